package model

// RiskLevel is a qualitative volatility or growth label.
type RiskLevel string

const (
	LevelLow      RiskLevel = "low"
	LevelModerate RiskLevel = "moderate"
	LevelHigh     RiskLevel = "high"
)

// AssessmentResult is the qualitative read of one simulated outcome.
type AssessmentResult struct {
	ReturnPercent float64   // full precision, e.g. 10 means +10%
	Volatility    RiskLevel
	Growth        RiskLevel
	Explanation   string
	GrowthAssets  float64
	StableAssets  float64
}

// ReferenceProfile is a fixed comparison point for an assessment.
type ReferenceProfile struct {
	Name        string
	Summary     string
	Description string
	Growth      RiskLevel
	Volatility  RiskLevel
}
