package classifier

import "Quint/internal/model"

var profiles = []model.ReferenceProfile{
	{
		Name:        "Conservative",
		Summary:     "Higher allocation to cash and bonds",
		Description: "Designed to preserve capital with limited ups and downs.",
		Growth:      model.LevelLow,
		Volatility:  model.LevelLow,
	},
	{
		Name:        "Balanced",
		Summary:     "Mix of growth and stability assets",
		Description: "A middle-ground approach balancing risk and return.",
		Growth:      model.LevelModerate,
		Volatility:  model.LevelModerate,
	},
	{
		Name:        "Aggressive",
		Summary:     "Higher exposure to equities and growth assets",
		Description: "Aims for higher returns but experiences stronger swings.",
		Growth:      model.LevelHigh,
		Volatility:  model.LevelHigh,
	},
}

// Profiles returns the reference profiles, safest first.
func Profiles() []model.ReferenceProfile {
	out := make([]model.ReferenceProfile, len(profiles))
	copy(out, profiles)
	return out
}

// MatchProfile returns the reference profile carrying the same labels as r.
func MatchProfile(r model.AssessmentResult) (model.ReferenceProfile, bool) {
	for _, p := range profiles {
		if p.Growth == r.Growth && p.Volatility == r.Volatility {
			return p, true
		}
	}
	return model.ReferenceProfile{}, false
}
