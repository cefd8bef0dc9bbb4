package simulator

import (
	"gonum.org/v1/gonum/stat"

	"Quint/internal/model"
)

// MonthlyReturns converts a path into 12 month-over-month returns,
// the first one measured against StartingCapital.
func MonthlyReturns(path model.SimulatedPath) []float64 {
	return returnsFrom(StartingCapital, path.Values())
}

// BenchmarkReturns is MonthlyReturns for the benchmark series. Nil without a benchmark.
func BenchmarkReturns(path model.SimulatedPath) []float64 {
	values := path.BenchmarkValues()
	if values == nil {
		return nil
	}
	return returnsFrom(StartingCapital, values)
}

func returnsFrom(start float64, values []float64) []float64 {
	returns := make([]float64, len(values))
	prev := start
	for i, v := range values {
		if prev != 0 {
			returns[i] = (v - prev) / prev
		}
		prev = v
	}
	return returns
}

// MaxDrawdown is the largest peak-to-trough decline as a fraction of the peak.
func MaxDrawdown(start float64, values []float64) float64 {
	peak := start
	var worst float64
	for _, v := range values {
		if v > peak {
			peak = v
			continue
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

// Analyze summarizes a path's monthly behaviour.
func Analyze(path model.SimulatedPath) model.PathStats {
	returns := MonthlyReturns(path)

	stats := model.PathStats{
		MeanMonthlyReturn: stat.Mean(returns, nil),
		MonthlyVolatility: stat.StdDev(returns, nil),
		MaxDrawdown:       MaxDrawdown(StartingCapital, path.Values()),
	}

	best, worst := 0, 0
	for i, r := range returns {
		if r > returns[best] {
			best = i
		}
		if r < returns[worst] {
			worst = i
		}
	}
	stats.BestMonth, stats.BestReturn = path.Points[best].Month, returns[best]
	stats.WorstMonth, stats.WorstReturn = path.Points[worst].Month, returns[worst]
	return stats
}
