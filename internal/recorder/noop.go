package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSimulation(_ *SimulationRecord) error { return nil }
func (n *NoopRecorder) RecordCompletion(_ *CompletionEvent) error  { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
