package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := NewScheduler(zerolog.Nop())
	s.Start()
	t.Cleanup(s.Stop)
	return s
}

func TestAfter_Fires(t *testing.T) {
	s := newTestScheduler(t)

	fired := make(chan struct{})
	s.After(20*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not fire")
	}
}

func TestAfter_ZeroDelayFires(t *testing.T) {
	s := newTestScheduler(t)

	fired := make(chan struct{})
	s.After(0, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not fire")
	}
}

func TestAfter_FiresOnce(t *testing.T) {
	s := newTestScheduler(t)

	var runs atomic.Int32
	s.After(10*time.Millisecond, func() { runs.Add(1) })

	require.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
	assert.Empty(t, s.Cron.Entries(), "fired entries are removed")
}

func TestAfter_Cancel(t *testing.T) {
	s := newTestScheduler(t)

	var runs atomic.Int32
	cancel := s.After(100*time.Millisecond, func() { runs.Add(1) })
	cancel()
	cancel()

	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
	assert.Empty(t, s.Cron.Entries())
}
