package model

import "strings"

// AssetClass identifies one of the four fixed asset classes.
type AssetClass string

const (
	Equity AssetClass = "equity"
	Bonds  AssetClass = "bonds"
	Tech   AssetClass = "tech"
	Cash   AssetClass = "cash"
)

// AssetClasses lists the asset classes in display order.
var AssetClasses = []AssetClass{Equity, Bonds, Tech, Cash}

// ParseAssetClass maps a user-supplied key to an AssetClass.
func ParseAssetClass(s string) (AssetClass, bool) {
	switch AssetClass(strings.ToLower(strings.TrimSpace(s))) {
	case Equity:
		return Equity, true
	case Bonds:
		return Bonds, true
	case Tech:
		return Tech, true
	case Cash:
		return Cash, true
	}
	return "", false
}

// Allocation holds the learner's percentage weights per asset class.
// The zero value is the empty allocation.
type Allocation struct {
	Equity float64 `json:"equity"`
	Bonds  float64 `json:"bonds"`
	Tech   float64 `json:"tech"`
	Cash   float64 `json:"cash"`
}

// Weight returns the weight for an asset class.
func (a Allocation) Weight(asset AssetClass) (float64, bool) {
	switch asset {
	case Equity:
		return a.Equity, true
	case Bonds:
		return a.Bonds, true
	case Tech:
		return a.Tech, true
	case Cash:
		return a.Cash, true
	}
	return 0, false
}

// Set changes a single weight. Values above 100 are accepted as-is;
// negative values and unknown assets are rejected.
func (a *Allocation) Set(asset AssetClass, value float64) bool {
	if value < 0 {
		return false
	}
	switch asset {
	case Equity:
		a.Equity = value
	case Bonds:
		a.Bonds = value
	case Tech:
		a.Tech = value
	case Cash:
		a.Cash = value
	default:
		return false
	}
	return true
}

// Total is the sum of all four weights.
func (a Allocation) Total() float64 {
	return a.Equity + a.Bonds + a.Tech + a.Cash
}

// Complete reports whether the weights sum to exactly 100.
func (a Allocation) Complete() bool {
	return a.Total() == 100
}

// GrowthAssets is the combined equity and tech weight.
func (a Allocation) GrowthAssets() float64 {
	return a.Equity + a.Tech
}

// StableAssets is the combined bonds and cash weight.
func (a Allocation) StableAssets() float64 {
	return a.Bonds + a.Cash
}

// AssetInfo describes an asset class for the learner.
type AssetInfo struct {
	Key         AssetClass
	Name        string
	Description string
}

// Assets is the asset catalog shown on the allocation screen.
var Assets = []AssetInfo{
	{Equity, "Equity ETF", "Represents the stock market as a whole. Often used as a reference point to measure long-term growth."},
	{Bonds, "Bond ETF", "Adds stability and helps reduce volatility during market downturns."},
	{Tech, "Technology Stocks", "Higher growth potential, but also higher risk and volatility."},
	{Cash, "Cash", "Provides safety and flexibility, but limits long-term returns."},
}

// LookupAsset returns the catalog entry for an asset class.
func LookupAsset(asset AssetClass) (AssetInfo, bool) {
	for _, info := range Assets {
		if info.Key == asset {
			return info, true
		}
	}
	return AssetInfo{}, false
}
