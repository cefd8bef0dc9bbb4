package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quint/internal/classifier"
	"Quint/internal/model"
	"Quint/internal/simulator"
)

func sampleOutcome(t *testing.T, alloc model.Allocation, benchmark bool) model.SimulationOutcome {
	t.Helper()
	path := simulator.Simulate(alloc, benchmark, simulator.NewSource(11))
	return model.SimulationOutcome{
		Path:        path,
		Assessment:  classifier.Classify(alloc, float64(path.FinalValue())),
		Stats:       simulator.Analyze(path),
		SimulatedAt: time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC),
	}
}

func TestGenerate(t *testing.T) {
	alloc := model.Allocation{Equity: 40, Bonds: 20, Tech: 30, Cash: 10}

	for _, benchmark := range []bool{true, false} {
		data, err := Generate(alloc, sampleOutcome(t, alloc, benchmark))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-", string(data[:5]))
		assert.Greater(t, len(data), 1000)
	}
}

func TestGenerate_FlatPath(t *testing.T) {
	var path model.SimulatedPath
	for i := range path.Points {
		path.Points[i] = model.PathPoint{Month: model.MonthLabels[i], Portfolio: 100000}
	}
	alloc := model.Allocation{Cash: 100}
	data, err := Generate(alloc, model.SimulationOutcome{
		Path:       path,
		Assessment: classifier.Classify(alloc, 100000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWriter_Export(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	w := NewWriter(dir)
	w.now = func() time.Time { return time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC) }

	alloc := model.Allocation{Equity: 60, Bonds: 40}
	path, err := w.Export(alloc, sampleOutcome(t, alloc, true))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "quint-result-20240309-150405.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestWriter_ExportBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	alloc := model.Allocation{Cash: 100}
	_, err := NewWriter(file).Export(alloc, sampleOutcome(t, alloc, false))
	assert.ErrorContains(t, err, "create report dir")
}
