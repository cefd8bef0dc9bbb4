package scheduler

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs delayed one-shot tasks on a cron runner.
type Scheduler struct {
	Cron *cron.Cron
	log  zerolog.Logger
}

// NewScheduler creates a new Scheduler. Call Start before scheduling work.
func NewScheduler(log zerolog.Logger) *Scheduler {
	s := &Scheduler{log: log.With().Str("component", "scheduler").Logger()}
	s.Cron = cron.New(cron.WithLogger(cron.PrintfLogger(&s.log)))
	return s
}

// once fires at a fixed instant and never again. The first Next call is the
// registration, so an instant already in the past still fires immediately.
type once struct {
	at   time.Time
	used bool
}

func (o *once) Next(time.Time) time.Time {
	if o.used {
		return time.Time{}
	}
	o.used = true
	return o.at
}

// After runs fn once after delay. The returned cancel removes the task if it
// has not started yet; calling it more than once is harmless.
func (s *Scheduler) After(delay time.Duration, fn func()) (cancel func()) {
	var (
		mu   sync.Mutex
		id   cron.EntryID
		done bool
	)

	mu.Lock()
	id = s.Cron.Schedule(&once{at: time.Now().Add(delay)}, cron.FuncJob(func() {
		mu.Lock()
		if done {
			mu.Unlock()
			return
		}
		done = true
		mu.Unlock()

		s.Cron.Remove(id)
		fn()
	}))
	mu.Unlock()
	s.log.Debug().Int("entry", int(id)).Dur("delay", delay).Msg("task scheduled")

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		done = true
		s.Cron.Remove(id)
		s.log.Debug().Int("entry", int(id)).Msg("task cancelled")
	}
}

// Start starts the cron runner.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Debug().Msg("scheduler started")
}

// Stop stops the runner and waits for running tasks to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Debug().Msg("scheduler stopped")
}
