package recorder

import (
	"time"

	"Quint/internal/model"
)

// SimulationRecord holds one simulation request and its assessment.
type SimulationRecord struct {
	SessionID  string
	Level      int
	Allocation model.Allocation
	Outcome    *model.SimulationOutcome
}

// CompletionEvent records a level completion.
type CompletionEvent struct {
	SessionID   string
	Level       int
	CompletedAt time.Time
}

// Recorder journals simulation activity for later analysis.
// Nothing is ever read back into a learner session.
type Recorder interface {
	RecordSimulation(rec *SimulationRecord) error
	RecordCompletion(evt *CompletionEvent) error
	Close() error
}
