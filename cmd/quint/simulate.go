package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"Quint/internal/classifier"
	"Quint/internal/config"
	"Quint/internal/model"
	"Quint/internal/recorder"
	"Quint/internal/render"
	"Quint/internal/report"
	"Quint/internal/simulator"
)

type simulateCmd struct {
	cfg *config.Config
	log zerolog.Logger

	alloc     model.Allocation
	seed      uint64
	benchmark bool
	pdf       string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate one year for an allocation" }
func (*simulateCmd) Usage() string {
	return `quint simulate -equity n -bonds n -tech n -cash n [-seed n] [-pdf file]

  Runs a single simulation and prints the result. Weights are percentages
  and must add up to 100.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.alloc.Equity, "equity", 0, "equity ETF weight in percent")
	f.Float64Var(&c.alloc.Bonds, "bonds", 0, "bond ETF weight in percent")
	f.Float64Var(&c.alloc.Tech, "tech", 0, "technology stocks weight in percent")
	f.Float64Var(&c.alloc.Cash, "cash", 0, "cash weight in percent")
	f.Uint64Var(&c.seed, "seed", c.cfg.Simulation.Seed, "random seed (0 picks one)")
	f.BoolVar(&c.benchmark, "benchmark", c.cfg.Simulation.Benchmark, "include the market reference")
	f.StringVar(&c.pdf, "pdf", "", "also write the result as a PDF to this file")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, w := range []float64{c.alloc.Equity, c.alloc.Bonds, c.alloc.Tech, c.alloc.Cash} {
		if w < 0 {
			fmt.Fprintln(os.Stderr, "Error: weights must not be negative")
			return subcommands.ExitUsageError
		}
	}
	if !c.alloc.Complete() {
		fmt.Fprintf(os.Stderr, "Please adjust your allocation to equal 100%% (currently %g%%)\n", c.alloc.Total())
		return subcommands.ExitUsageError
	}

	path := simulator.Simulate(c.alloc, c.benchmark, simulator.NewSource(c.seed))
	outcome := model.SimulationOutcome{
		Path:        path,
		Assessment:  classifier.Classify(c.alloc, float64(path.FinalValue())),
		Stats:       simulator.Analyze(path),
		SimulatedAt: time.Now(),
	}
	fmt.Print(render.FormatResult(c.alloc, outcome))

	rec := openRecorder(c.cfg, c.log)
	defer rec.Close()
	if err := rec.RecordSimulation(&recorder.SimulationRecord{
		SessionID:  uuid.NewString(),
		Allocation: c.alloc,
		Outcome:    &outcome,
	}); err != nil {
		c.log.Error().Err(err).Msg("record simulation")
	}

	if c.pdf != "" {
		data, err := report.Generate(c.alloc, outcome)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.pdf, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", c.pdf, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("\nReport saved to %s\n", c.pdf)
	}
	return subcommands.ExitSuccess
}
