package model

import "time"

// MonthCount is the number of points in every simulated path.
const MonthCount = 12

// MonthLabels are the point labels, in path order.
var MonthLabels = [MonthCount]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// PathPoint is one month of a simulated path.
// Benchmark is zero when the path was generated without a benchmark.
type PathPoint struct {
	Month     string `json:"month"`
	Portfolio int64  `json:"portfolio"`
	Benchmark int64  `json:"benchmark,omitempty"`
}

// SimulatedPath is a synthetic one-year performance path.
type SimulatedPath struct {
	Points       [MonthCount]PathPoint `json:"points"`
	HasBenchmark bool                  `json:"has_benchmark"`
}

// FinalValue is the portfolio value in December.
func (p SimulatedPath) FinalValue() int64 {
	return p.Points[MonthCount-1].Portfolio
}

// BenchmarkFinalValue is the benchmark value in December.
func (p SimulatedPath) BenchmarkFinalValue() int64 {
	return p.Points[MonthCount-1].Benchmark
}

// Values returns the portfolio values as floats.
func (p SimulatedPath) Values() []float64 {
	out := make([]float64, MonthCount)
	for i, pt := range p.Points {
		out[i] = float64(pt.Portfolio)
	}
	return out
}

// BenchmarkValues returns the benchmark values as floats, or nil without a benchmark.
func (p SimulatedPath) BenchmarkValues() []float64 {
	if !p.HasBenchmark {
		return nil
	}
	out := make([]float64, MonthCount)
	for i, pt := range p.Points {
		out[i] = float64(pt.Benchmark)
	}
	return out
}

// PathStats summarizes the month-to-month behaviour of a path.
// Returns are fractions (0.01 = 1%).
type PathStats struct {
	MeanMonthlyReturn float64
	MonthlyVolatility float64
	MaxDrawdown       float64
	BestMonth         string
	BestReturn        float64
	WorstMonth        string
	WorstReturn       float64
}

// SimulationOutcome is everything produced by one simulation request.
type SimulationOutcome struct {
	Path        SimulatedPath
	Assessment  AssessmentResult
	Stats       PathStats
	SimulatedAt time.Time
}
