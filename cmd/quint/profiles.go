package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"Quint/internal/render"
)

type profilesCmd struct{}

func (*profilesCmd) Name() string             { return "profiles" }
func (*profilesCmd) Synopsis() string         { return "print the reference portfolio profiles" }
func (*profilesCmd) Usage() string            { return "quint profiles\n" }
func (*profilesCmd) SetFlags(*flag.FlagSet) {}

func (*profilesCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	fmt.Print(render.FormatProfiles(nil))
	return subcommands.ExitSuccess
}
