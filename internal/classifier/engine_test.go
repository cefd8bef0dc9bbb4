package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quint/internal/model"
)

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		alloc      model.Allocation
		volatility model.RiskLevel
		growth     model.RiskLevel
	}{
		{"61 growth is high", model.Allocation{Equity: 61, Cash: 39}, model.LevelHigh, model.LevelHigh},
		{"60 growth is moderate", model.Allocation{Equity: 60, Cash: 40}, model.LevelModerate, model.LevelModerate},
		{"31 growth is moderate", model.Allocation{Equity: 20, Tech: 11, Bonds: 69}, model.LevelModerate, model.LevelModerate},
		{"30 growth is low", model.Allocation{Equity: 30, Bonds: 35, Cash: 35}, model.LevelLow, model.LevelLow},
		{"all cash is low", model.Allocation{Cash: 100}, model.LevelLow, model.LevelLow},
		{"all tech is high", model.Allocation{Tech: 100}, model.LevelHigh, model.LevelHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Classify(tc.alloc, 100000)
			assert.Equal(t, tc.volatility, r.Volatility)
			assert.Equal(t, tc.growth, r.Growth)
		})
	}
}

func TestClassify_StableAssetsDoNotChangeLabels(t *testing.T) {
	a := Classify(model.Allocation{Equity: 40, Bonds: 60}, 100000)
	b := Classify(model.Allocation{Equity: 40, Cash: 10}, 100000)
	assert.Equal(t, a.Volatility, b.Volatility)
	assert.Equal(t, 60.0, a.StableAssets)
	assert.Equal(t, 10.0, b.StableAssets)
	assert.Equal(t, 40.0, a.GrowthAssets)
}

func TestClassify_ReturnPercentExact(t *testing.T) {
	alloc := model.Allocation{Equity: 50, Bonds: 30, Tech: 10, Cash: 10}

	assert.Equal(t, 10.0, Classify(alloc, 110000).ReturnPercent)
	assert.Equal(t, -5.0, Classify(alloc, 95000).ReturnPercent)
	assert.Equal(t, 0.0, Classify(alloc, 100000).ReturnPercent)
	assert.InDelta(t, 1.234, Classify(alloc, 101234).ReturnPercent, 1e-12, "not rounded to two decimals")
}

func TestClassify_Explanations(t *testing.T) {
	heavyTech := Classify(model.Allocation{Equity: 40, Tech: 30, Cash: 30}, 100000)
	assert.Equal(t,
		"Your portfolio experienced bigger ups and downs throughout the year. "+
			"This is mainly due to the higher exposure to growth assets like technology stocks and equities.",
		heavyTech.Explanation)

	lightTech := Classify(model.Allocation{Equity: 60, Tech: 20, Cash: 20}, 100000)
	assert.Equal(t, model.LevelHigh, lightTech.Volatility)
	assert.NotContains(t, lightTech.Explanation, "technology")
	assert.True(t, strings.HasSuffix(lightTech.Explanation, "growth assets like equities."))

	moderate := Classify(model.Allocation{Equity: 20, Tech: 30, Bonds: 50}, 100000)
	assert.Equal(t, model.LevelModerate, moderate.Volatility)
	assert.Equal(t, moderateExplanation, moderate.Explanation, "tech share only matters for high volatility")

	low := Classify(model.Allocation{Bonds: 50, Cash: 50}, 90000)
	assert.Equal(t, lowExplanation, low.Explanation)
}

func TestProfiles(t *testing.T) {
	ps := Profiles()
	require.Len(t, ps, 3)
	assert.Equal(t, "Conservative", ps[0].Name)
	assert.Equal(t, model.LevelLow, ps[0].Growth)
	assert.Equal(t, "Balanced", ps[1].Name)
	assert.Equal(t, "Aggressive", ps[2].Name)
	assert.Equal(t, model.LevelHigh, ps[2].Volatility)

	ps[0].Name = "changed"
	assert.Equal(t, "Conservative", Profiles()[0].Name)
}

func TestMatchProfile(t *testing.T) {
	r := Classify(model.Allocation{Equity: 50, Bonds: 30, Tech: 10, Cash: 10}, 104000)
	p, ok := MatchProfile(r)
	require.True(t, ok)
	assert.Equal(t, "Balanced", p.Name)

	_, ok = MatchProfile(model.AssessmentResult{Volatility: model.LevelHigh, Growth: model.LevelLow})
	assert.False(t, ok)
}
