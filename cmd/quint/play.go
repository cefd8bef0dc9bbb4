package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"Quint/internal/config"
	"Quint/internal/console"
	"Quint/internal/progress"
	"Quint/internal/report"
	"Quint/internal/scheduler"
	"Quint/internal/simulator"
)

type playCmd struct {
	cfg *config.Config
	log zerolog.Logger

	seed      uint64
	benchmark bool
	delay     time.Duration
	reportDir string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "start an interactive learning session" }
func (*playCmd) Usage() string {
	return `quint play [-seed n] [-benchmark=false] [-delay 1.5s] [-reports dir]

  Walks through the levels: build a portfolio, simulate a year, review,
  and unlock the next level. Type 'help' once inside.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", c.cfg.Simulation.Seed, "random seed for simulated paths (0 picks one)")
	f.BoolVar(&c.benchmark, "benchmark", c.cfg.Simulation.Benchmark, "show the market reference next to the portfolio")
	f.DurationVar(&c.delay, "delay", c.cfg.Session.CompletionDelay, "pause before returning to the dashboard after a level")
	f.StringVar(&c.reportDir, "reports", c.cfg.Report.OutputDir, "directory for exported PDF reports")
}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec := openRecorder(c.cfg, c.log)
	defer rec.Close()

	sched := scheduler.NewScheduler(c.log)
	sched.Start()
	defer sched.Stop()

	ctrl := progress.NewController(simulator.New(simulator.NewSource(c.seed)), sched, progress.Options{
		CompletionDelay: c.delay,
		Benchmark:       c.benchmark,
		Recorder:        rec,
		Logger:          &c.log,
	})
	defer ctrl.Close()

	c.log.Info().Str("session", ctrl.SessionID()).Msg("session started")
	con := console.New(ctrl, report.NewWriter(c.reportDir), c.log)
	if err := con.Run(ctx, os.Stdin, os.Stdout); err != nil {
		c.log.Error().Err(err).Msg("read input")
		return subcommands.ExitFailure
	}
	c.log.Info().Str("session", ctrl.SessionID()).Msg("session ended")
	return subcommands.ExitSuccess
}
