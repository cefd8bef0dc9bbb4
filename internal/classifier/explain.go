package classifier

import (
	"fmt"

	"Quint/internal/model"
)

const (
	highExplanation = "Your portfolio experienced bigger ups and downs throughout the year. " +
		"This is mainly due to the higher exposure to growth assets like %sequities."
	techClause          = "technology stocks and "
	moderateExplanation = "Your portfolio showed moderate ups and downs. " +
		"You balanced growth assets with more stable investments, which helped smooth out some of the volatility."
	lowExplanation = "Your portfolio remained relatively stable throughout the year. " +
		"The higher allocation to bonds and cash helped protect against market swings, though it may limit growth potential."
)

// explain selects the explanation for a volatility label. heavyTech only
// affects the high-volatility wording.
func explain(volatility model.RiskLevel, heavyTech bool) string {
	switch volatility {
	case model.LevelHigh:
		clause := ""
		if heavyTech {
			clause = techClause
		}
		return fmt.Sprintf(highExplanation, clause)
	case model.LevelModerate:
		return moderateExplanation
	default:
		return lowExplanation
	}
}
