// Package console runs a learner session as a line-oriented terminal game.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"Quint/internal/classifier"
	"Quint/internal/model"
	"Quint/internal/progress"
	"Quint/internal/render"
)

const prompt = "> "

// Exporter saves a simulation result somewhere and returns its location.
type Exporter interface {
	Export(alloc model.Allocation, outcome model.SimulationOutcome) (string, error)
}

// Console maps typed commands onto a progress.Controller.
type Console struct {
	ctrl     *progress.Controller
	exporter Exporter
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a console. exporter may be nil, which disables 'export'.
func New(ctrl *progress.Controller, exporter Exporter, log zerolog.Logger) *Console {
	return &Console{
		ctrl:     ctrl,
		exporter: exporter,
		log:      log.With().Str("component", "console").Logger(),
		now:      time.Now,
	}
}

// Run reads commands from in until quit, EOF, or ctx is cancelled.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
		close(lines)
	}()

	fmt.Fprint(out, c.Screen())
	fmt.Fprint(out, prompt)
	for {
		select {
		case <-ctx.Done():
			c.log.Debug().Msg("console stopped")
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			reply, quit := c.HandleCommand(line)
			if reply != "" {
				fmt.Fprintln(out, reply)
			}
			if quit {
				return nil
			}
			fmt.Fprint(out, prompt)
		}
	}
}

// Screen renders whatever the learner is currently looking at.
func (c *Console) Screen() string {
	state := c.ctrl.State()
	switch state.Screen {
	case model.ScreenAllocate:
		return render.FormatAllocation(c.ctrl.Allocation())
	case model.ScreenSimulateResult:
		if out, ok := c.ctrl.Result(); ok {
			return render.FormatResult(c.ctrl.Allocation(), out) + "\nType 'continue' to review what you learned.\n"
		}
	case model.ScreenReview:
		if state.Transitioning {
			return fmt.Sprintf("Level %d unlocked. Loading your dashboard...\n", state.Level)
		}
		return render.FormatReview(state)
	}
	var preview *model.SimulatedPath
	if p, ok := c.ctrl.PreviewPath(); ok {
		preview = &p
	}
	return render.FormatDashboard(state, c.ctrl.Allocation(), preview, c.now())
}

// HandleCommand processes one input line and returns the reply. quit is set
// when the learner asked to leave.
func (c *Console) HandleCommand(line string) (reply string, quit bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return c.Screen(), false
	}
	c.log.Debug().Str("command", fields[0]).Msg("received command")

	switch fields[0] {
	case "help", "?":
		return helpText, false
	case "status", "show":
		return c.Screen(), false
	case "quit", "exit", "q":
		return "Goodbye.", true
	case "profiles":
		return c.profiles(), false
	case "info":
		return c.info(fields[1:]), false
	case "start":
		return c.transition(c.ctrl.StartLevel()), false
	case "back":
		return c.transition(c.ctrl.Back()), false
	case "set":
		return c.set(fields[1:]), false
	case "simulate", "sim":
		return c.simulate(), false
	case "continue":
		return c.transition(c.ctrl.Continue()), false
	case "retry":
		return c.transition(c.ctrl.TryAgain()), false
	case "next":
		return c.transition(c.ctrl.ContinueToNextLevel()), false
	case "export":
		return c.export(), false
	default:
		return fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", fields[0]), false
	}
}

func (c *Console) transition(ok bool) string {
	if !ok {
		return "That is not available right now. Type 'help' for a list of commands."
	}
	return c.Screen()
}

func (c *Console) set(args []string) string {
	if len(args) != 2 {
		return "usage: set <equity|bonds|tech|cash> <percent>"
	}
	asset, ok := model.ParseAssetClass(args[0])
	if !ok {
		return fmt.Sprintf("Unknown asset %q. Choose one of equity, bonds, tech, cash.", args[0])
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil || value < 0 {
		return fmt.Sprintf("Invalid percentage %q.", args[1])
	}
	if !c.ctrl.SetWeight(asset, value) {
		return "Weights can only be changed while building a portfolio. Type 'start' first."
	}
	return c.Screen()
}

func (c *Console) simulate() string {
	out, ok := c.ctrl.RequestSimulation()
	if ok {
		return render.FormatResult(c.ctrl.Allocation(), out) + "\nType 'continue' to review what you learned.\n"
	}
	if c.ctrl.State().Screen == model.ScreenAllocate {
		return fmt.Sprintf("Please adjust your allocation to equal 100%% (currently %g%%).", c.ctrl.Allocation().Total())
	}
	return "There is nothing to simulate here. Type 'start' to build a portfolio."
}

func (c *Console) info(args []string) string {
	if len(args) == 0 {
		var b strings.Builder
		for _, a := range model.Assets {
			b.WriteString(render.FormatAssetInfo(a))
		}
		return b.String()
	}
	asset, ok := model.ParseAssetClass(args[0])
	if !ok {
		return fmt.Sprintf("Unknown asset %q. Choose one of equity, bonds, tech, cash.", args[0])
	}
	a, _ := model.LookupAsset(asset)
	return render.FormatAssetInfo(a)
}

func (c *Console) profiles() string {
	if out, ok := c.ctrl.Result(); ok {
		return render.FormatProfiles(&out.Assessment)
	}
	return render.FormatProfiles(nil)
}

func (c *Console) export() string {
	if c.exporter == nil {
		return "Report export is not configured."
	}
	out, ok := c.ctrl.Result()
	if !ok {
		return "Run a simulation first; reports can be exported from the result screen."
	}
	path, err := c.exporter.Export(c.ctrl.Allocation(), out)
	if err != nil {
		c.log.Error().Err(err).Msg("export report")
		return fmt.Sprintf("Export failed: %v", err)
	}
	c.log.Info().Str("path", path).Str("profile", matchedProfile(out.Assessment)).Msg("report exported")
	return fmt.Sprintf("Report saved to %s", path)
}

func matchedProfile(r model.AssessmentResult) string {
	if p, ok := classifier.MatchProfile(r); ok {
		return p.Name
	}
	return ""
}

const helpText = `Commands:
  start                  begin the current level
  set <asset> <percent>  change a weight (equity, bonds, tech, cash)
  info [asset]           describe the asset classes
  simulate               run the simulation once your weights total 100%
  continue               move from the result to the review
  next                   complete the level and unlock the next one
  retry                  go back and build a new portfolio
  back                   return to the dashboard
  status                 show the current screen
  profiles               show the reference profiles
  export                 save the current result as a PDF
  help                   show this list
  quit                   leave`
