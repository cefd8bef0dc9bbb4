// Package simulator generates synthetic one-year performance paths for an allocation.
package simulator

import (
	"math"
	"math/rand/v2"
	"sync"

	"Quint/internal/model"
)

// StartingCapital is the virtual capital every path starts from.
const StartingCapital = 100000.0

// Per-asset contribution to the risk score. Tech is the riskiest, cash the safest.
const (
	equityRisk = 0.8
	techRisk   = 1.2
	bondsRisk  = 0.3
	cashRisk   = 0.1
)

// Return model. The 0.45 offset gives draws a mild downward bias.
const (
	drawOffset         = 0.45
	portfolioAmplitude = 0.06
	benchmarkAmplitude = 0.05
)

// RandomSource yields uniform draws in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed draws the seed from the runtime.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// RiskScore weighs each asset class by its relative volatility contribution.
func RiskScore(a model.Allocation) float64 {
	return a.Equity*equityRisk + a.Tech*techRisk + a.Bonds*bondsRisk + a.Cash*cashRisk
}

// VolatilityFactor scales the monthly return amplitude.
func VolatilityFactor(a model.Allocation) float64 {
	return RiskScore(a) / 100
}

// MonthlyReturn converts a uniform draw into the portfolio's return for one month.
func MonthlyReturn(u, volatility float64) float64 {
	return (u - drawOffset) * portfolioAmplitude * (1 + volatility)
}

// BenchmarkReturn converts a uniform draw into the market reference's return.
// It ignores the allocation entirely.
func BenchmarkReturn(u float64) float64 {
	return (u - drawOffset) * benchmarkAmplitude
}

// Simulate builds a fresh 12-month path. When withBenchmark is set, each month
// draws the portfolio return first and the benchmark return second.
func Simulate(a model.Allocation, withBenchmark bool, src RandomSource) model.SimulatedPath {
	volatility := VolatilityFactor(a)
	portfolio := StartingCapital
	benchmark := StartingCapital

	path := model.SimulatedPath{HasBenchmark: withBenchmark}
	for i, month := range model.MonthLabels {
		portfolio += portfolio * MonthlyReturn(src.Float64(), volatility)
		pt := model.PathPoint{Month: month, Portfolio: roundValue(portfolio)}
		if withBenchmark {
			benchmark += benchmark * BenchmarkReturn(src.Float64())
			pt.Benchmark = roundValue(benchmark)
		}
		path.Points[i] = pt
	}
	return path
}

// roundValue rounds half up, so -0.5 becomes 0 rather than -1.
func roundValue(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Simulator owns a random source and produces independent paths on every call.
type Simulator struct {
	mu  sync.Mutex
	src RandomSource
}

// New creates a Simulator drawing from src.
func New(src RandomSource) *Simulator {
	return &Simulator{src: src}
}

// Simulate produces a new path. Safe for concurrent use.
func (s *Simulator) Simulate(a model.Allocation, withBenchmark bool) model.SimulatedPath {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Simulate(a, withBenchmark, s.src)
}
