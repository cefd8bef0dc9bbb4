package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"Quint/internal/model"
)

// fixedSource always returns the same draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// scriptedSource replays draws in order and counts them.
type scriptedSource struct {
	draws []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

var (
	allCash   = model.Allocation{Cash: 100}
	allBonds  = model.Allocation{Bonds: 100}
	allEquity = model.Allocation{Equity: 100}
	allTech   = model.Allocation{Tech: 100}
	mixed     = model.Allocation{Equity: 50, Bonds: 30, Tech: 10, Cash: 10}
)

func TestRiskScore(t *testing.T) {
	assert.InDelta(t, 62.0, RiskScore(mixed), 1e-9)
	assert.InDelta(t, 120.0, RiskScore(allTech), 1e-9)
	assert.InDelta(t, 10.0, RiskScore(allCash), 1e-9)
	assert.InDelta(t, 0.62, VolatilityFactor(mixed), 1e-9)
	assert.Equal(t, 0.0, RiskScore(model.Allocation{}))
}

func TestSimulate_Structure(t *testing.T) {
	src := NewSource(7)
	for _, a := range []model.Allocation{allCash, allBonds, allEquity, allTech, mixed} {
		for _, bench := range []bool{false, true} {
			path := Simulate(a, bench, src)
			assert.Equal(t, bench, path.HasBenchmark)
			for i, pt := range path.Points {
				assert.Equal(t, model.MonthLabels[i], pt.Month)
				assert.Greater(t, pt.Portfolio, int64(0))
				if bench {
					assert.Greater(t, pt.Benchmark, int64(0))
				} else {
					assert.Zero(t, pt.Benchmark)
				}
			}
		}
	}
}

func TestSimulate_NeutralDrawKeepsCapital(t *testing.T) {
	path := Simulate(mixed, true, fixedSource(0.45))
	for _, pt := range path.Points {
		assert.Equal(t, int64(100000), pt.Portfolio)
		assert.Equal(t, int64(100000), pt.Benchmark)
	}
}

func TestSimulate_FirstMonthExact(t *testing.T) {
	path := Simulate(allCash, true, fixedSource(0.95))
	// (0.95-0.45) * 0.06 * (1 + 0.1) = 3.3%
	assert.Equal(t, int64(103300), path.Points[0].Portfolio)
	// (0.95-0.45) * 0.05 = 2.5%
	assert.Equal(t, int64(102500), path.Points[0].Benchmark)
}

func TestSimulate_WorstCaseStaysPositive(t *testing.T) {
	path := Simulate(allTech, false, fixedSource(0))
	for i := 1; i < model.MonthCount; i++ {
		assert.Less(t, path.Points[i].Portfolio, path.Points[i-1].Portfolio)
	}
	assert.Greater(t, path.FinalValue(), int64(0))
}

func TestSimulate_DrawOrder(t *testing.T) {
	src := &scriptedSource{draws: []float64{0.95, 0.45}}
	path := Simulate(allCash, true, src)

	assert.Equal(t, 2*model.MonthCount, src.calls)
	assert.Equal(t, int64(103300), path.Points[0].Portfolio)
	for _, pt := range path.Points {
		assert.Equal(t, int64(100000), pt.Benchmark, "benchmark uses the second draw of each month")
	}

	plain := &scriptedSource{draws: []float64{0.5}}
	Simulate(allCash, false, plain)
	assert.Equal(t, model.MonthCount, plain.calls)
}

func TestSimulate_SeededIsReproducible(t *testing.T) {
	a := Simulate(mixed, true, NewSource(99))
	b := Simulate(mixed, true, NewSource(99))
	assert.Equal(t, a, b)
}

func TestSimulator_FreshPathPerCall(t *testing.T) {
	sim := New(NewSource(3))
	first := sim.Simulate(mixed, true)
	second := sim.Simulate(mixed, true)
	assert.NotEqual(t, first, second)
}

func TestSimulate_BenchmarkIgnoresAllocation(t *testing.T) {
	cautious := Simulate(allCash, true, NewSource(11))
	bold := Simulate(allTech, true, NewSource(11))

	assert.NotEqual(t, cautious.Values(), bold.Values())
	assert.Equal(t, cautious.BenchmarkValues(), bold.BenchmarkValues())
}

func TestSimulate_VarianceGrowsWithRisk(t *testing.T) {
	const paths = 2000
	ordered := []model.Allocation{allCash, allBonds, mixed, allEquity, allTech}

	prevScore, prevVar := -1.0, -1.0
	for _, a := range ordered {
		src := NewSource(42)
		var returns []float64
		for i := 0; i < paths; i++ {
			returns = append(returns, MonthlyReturns(Simulate(a, false, src))...)
		}
		score := RiskScore(a)
		variance := stat.Variance(returns, nil)

		require.Greater(t, score, prevScore, "allocations must be ordered by risk score")
		assert.Greater(t, variance, prevVar, "variance for risk score %.1f", score)
		prevScore, prevVar = score, variance
	}
}
