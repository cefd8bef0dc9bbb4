// Package progress drives a learner through a lesson: allocate, simulate,
// review, and move on to the next level.
package progress

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"Quint/internal/classifier"
	"Quint/internal/model"
	"Quint/internal/recorder"
	"Quint/internal/simulator"
)

// DefaultCompletionDelay lets the completion animation finish before the dashboard shows.
const DefaultCompletionDelay = 1500 * time.Millisecond

// PathSimulator produces a fresh simulated path per call.
type PathSimulator interface {
	Simulate(a model.Allocation, withBenchmark bool) model.SimulatedPath
}

// Scheduler runs fn once after delay and returns a cancel function.
type Scheduler interface {
	After(delay time.Duration, fn func()) (cancel func())
}

// Options tunes a Controller. Zero values are usable.
type Options struct {
	CompletionDelay time.Duration
	Benchmark       bool
	SessionID       string
	Recorder        recorder.Recorder
	Logger          *zerolog.Logger
	Now             func() time.Time
}

// Controller owns one learner session. Methods are safe for concurrent use;
// the delayed dashboard switch arrives on the scheduler's goroutine.
type Controller struct {
	mu      sync.Mutex
	state   model.ProgressionState
	alloc   model.Allocation
	outcome *model.SimulationOutcome

	sim       PathSimulator
	sched     Scheduler
	rec       recorder.Recorder
	log       zerolog.Logger
	now       func() time.Time
	delay     time.Duration
	benchmark bool
	sessionID string

	cancelSwitch func()
	generation   uint64
	closed       bool
}

// NewController starts a session on the dashboard at level 1.
func NewController(sim PathSimulator, sched Scheduler, opts Options) *Controller {
	c := &Controller{
		state:     model.ProgressionState{Level: 1, Screen: model.ScreenDashboard},
		sim:       sim,
		sched:     sched,
		rec:       opts.Recorder,
		now:       opts.Now,
		delay:     opts.CompletionDelay,
		benchmark: opts.Benchmark,
		sessionID: opts.SessionID,
	}
	if c.rec == nil {
		c.rec = recorder.NewNoopRecorder()
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	c.log = log.With().Str("component", "progress").Str("session", c.sessionID).Logger()
	return c
}

// SessionID identifies this session in the journal.
func (c *Controller) SessionID() string { return c.sessionID }

// State returns a copy of the current progression state.
func (c *Controller) State() model.ProgressionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.Completed = slices.Clone(c.state.Completed)
	return s
}

// Allocation returns a copy of the current allocation.
func (c *Controller) Allocation() model.Allocation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alloc
}

// StartLevel moves from the dashboard to the allocation screen.
func (c *Controller) StartLevel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenDashboard) {
		return false
	}
	c.setScreen(model.ScreenAllocate)
	return true
}

// Back returns from the allocation screen to the dashboard, keeping the weights.
func (c *Controller) Back() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenAllocate) {
		return false
	}
	c.setScreen(model.ScreenDashboard)
	return true
}

// SetWeight changes one weight. Only accepted on the allocation screen.
func (c *Controller) SetWeight(asset model.AssetClass, value float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenAllocate) {
		return false
	}
	if !c.alloc.Set(asset, value) {
		return false
	}
	c.log.Debug().Str("asset", string(asset)).Float64("value", value).Float64("total", c.alloc.Total()).Msg("weight set")
	return true
}

// RequestSimulation runs the simulator once and freezes the outcome for the
// result screen. It is refused unless the weights total exactly 100.
func (c *Controller) RequestSimulation() (model.SimulationOutcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenAllocate) {
		return model.SimulationOutcome{}, false
	}
	if !c.alloc.Complete() {
		c.log.Debug().Float64("total", c.alloc.Total()).Msg("simulation refused: allocation must total 100")
		return model.SimulationOutcome{}, false
	}

	now := c.now()
	path := c.sim.Simulate(c.alloc, c.benchmark)
	outcome := model.SimulationOutcome{
		Path:        path,
		Assessment:  classifier.Classify(c.alloc, float64(path.FinalValue())),
		Stats:       simulator.Analyze(path),
		SimulatedAt: now,
	}
	c.outcome = &outcome
	c.state.HasSimulated = true
	c.state.LastSimulationAt = now
	c.setScreen(model.ScreenSimulateResult)

	c.log.Info().
		Int("level", c.state.Level).
		Int64("final_value", path.FinalValue()).
		Float64("return_pct", outcome.Assessment.ReturnPercent).
		Str("volatility", string(outcome.Assessment.Volatility)).
		Msg("simulation completed")

	if err := c.rec.RecordSimulation(&recorder.SimulationRecord{
		SessionID:  c.sessionID,
		Level:      c.state.Level,
		Allocation: c.alloc,
		Outcome:    &outcome,
	}); err != nil {
		c.log.Error().Err(err).Msg("record simulation")
	}
	return outcome, true
}

// Result returns the outcome frozen by the last accepted simulation request.
// It is only available on the result screen and never re-runs the simulator.
func (c *Controller) Result() (model.SimulationOutcome, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.outcome == nil || c.state.Screen != model.ScreenSimulateResult {
		return model.SimulationOutcome{}, false
	}
	return *c.outcome, true
}

// PreviewPath simulates the current allocation without a benchmark for the
// dashboard. Every call yields a new path; nothing is stored.
func (c *Controller) PreviewPath() (model.SimulatedPath, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.HasSimulated {
		return model.SimulatedPath{}, false
	}
	return c.sim.Simulate(c.alloc, false), true
}

// Continue moves from the result screen to the review screen.
func (c *Controller) Continue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenSimulateResult) {
		return false
	}
	c.outcome = nil
	c.setScreen(model.ScreenReview)
	return true
}

// TryAgain returns to the allocation screen with all weights reset to zero.
func (c *Controller) TryAgain() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.on(model.ScreenReview) || c.state.Transitioning {
		return false
	}
	c.alloc = model.Allocation{}
	c.setScreen(model.ScreenAllocate)
	return true
}

// ContinueToNextLevel completes the current level and advances to the next one
// immediately. The switch to the dashboard happens after the completion delay.
func (c *Controller) ContinueToNextLevel() bool {
	c.mu.Lock()
	if !c.on(model.ScreenReview) || c.state.Transitioning {
		c.mu.Unlock()
		return false
	}

	finished := c.state.Level
	c.completeLevel(finished)
	c.state.Level = finished + 1
	c.state.Transitioning = true
	c.generation++
	gen := c.generation
	delay := c.delay
	c.log.Info().Int("completed", finished).Int("level", c.state.Level).Msg("level completed")
	c.mu.Unlock()

	cancel := c.sched.After(delay, func() { c.finishTransition(gen) })

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation || !c.state.Transitioning {
		cancel()
		return true
	}
	c.cancelSwitch = cancel
	return true
}

// Close ends the session. A pending dashboard switch is cancelled and any
// late callback is ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	if c.cancelSwitch != nil {
		c.cancelSwitch()
		c.cancelSwitch = nil
	}
	c.log.Debug().Msg("session closed")
}

func (c *Controller) finishTransition(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation || !c.state.Transitioning {
		return
	}
	c.state.Transitioning = false
	c.cancelSwitch = nil
	c.setScreen(model.ScreenDashboard)
}

// completeLevel is idempotent.
func (c *Controller) completeLevel(level int) {
	if slices.Contains(c.state.Completed, level) {
		return
	}
	c.state.Completed = append(c.state.Completed, level)
	if err := c.rec.RecordCompletion(&recorder.CompletionEvent{
		SessionID:   c.sessionID,
		Level:       level,
		CompletedAt: c.now(),
	}); err != nil {
		c.log.Error().Err(err).Msg("record completion")
	}
}

func (c *Controller) on(screen model.Screen) bool {
	return !c.closed && c.state.Screen == screen
}

func (c *Controller) setScreen(screen model.Screen) {
	c.log.Debug().Str("from", string(c.state.Screen)).Str("to", string(screen)).Msg("screen transition")
	c.state.Screen = screen
}
