// Package classifier turns an allocation and its simulated outcome into qualitative labels.
package classifier

import "Quint/internal/model"

// startingCapital mirrors simulator.StartingCapital; the classifier has no
// dependency on the simulator.
const startingCapital = 100000.0

// Tiers maps the growth-asset share to volatility and growth labels.
// A tier applies when growth assets are strictly above Above.
var Tiers = []struct {
	Above      float64
	Volatility model.RiskLevel
	Growth     model.RiskLevel
}{
	{60, model.LevelHigh, model.LevelHigh},
	{30, model.LevelModerate, model.LevelModerate},
}

// DefaultVolatility and DefaultGrowth apply at or below the last tier.
const (
	DefaultVolatility = model.LevelLow
	DefaultGrowth     = model.LevelLow
)

// mapTier picks the labels for a growth-asset share. Stable assets are
// not consulted.
func mapTier(growthAssets float64) (volatility, growth model.RiskLevel) {
	for _, t := range Tiers {
		if growthAssets > t.Above {
			return t.Volatility, t.Growth
		}
	}
	return DefaultVolatility, DefaultGrowth
}

// ReturnPercent is the one-year return of finalValue against the starting capital.
// It is not rounded.
func ReturnPercent(finalValue float64) float64 {
	return (finalValue - startingCapital) / startingCapital * 100
}

// Classify computes the assessment for an allocation and its final value.
func Classify(a model.Allocation, finalValue float64) model.AssessmentResult {
	growthAssets := a.GrowthAssets()
	volatility, growth := mapTier(growthAssets)

	return model.AssessmentResult{
		ReturnPercent: ReturnPercent(finalValue),
		Volatility:    volatility,
		Growth:        growth,
		Explanation:   explain(volatility, a.Tech > 20),
		GrowthAssets:  growthAssets,
		StableAssets:  a.StableAssets(),
	}
}
