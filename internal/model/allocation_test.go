package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation_ZeroValue(t *testing.T) {
	var a Allocation
	assert.Equal(t, 0.0, a.Total())
	assert.False(t, a.Complete())
}

func TestAllocation_Set(t *testing.T) {
	var a Allocation
	require.True(t, a.Set(Equity, 50))
	require.True(t, a.Set(Bonds, 30))
	require.True(t, a.Set(Tech, 10))
	require.True(t, a.Set(Cash, 10))

	assert.Equal(t, Allocation{Equity: 50, Bonds: 30, Tech: 10, Cash: 10}, a)
	assert.True(t, a.Complete())
	assert.Equal(t, 60.0, a.GrowthAssets())
	assert.Equal(t, 40.0, a.StableAssets())
}

func TestAllocation_SetRejects(t *testing.T) {
	a := Allocation{Equity: 20}

	assert.False(t, a.Set(Equity, -1), "negative weights are rejected")
	assert.False(t, a.Set(AssetClass("gold"), 10), "unknown asset is rejected")
	assert.Equal(t, Allocation{Equity: 20}, a)

	assert.True(t, a.Set(Tech, 150), "no upper clamp")
	assert.Equal(t, 150.0, a.Tech)
}

func TestAllocation_Weight(t *testing.T) {
	a := Allocation{Equity: 1, Bonds: 2, Tech: 3, Cash: 4}
	for i, asset := range AssetClasses {
		w, ok := a.Weight(asset)
		require.True(t, ok)
		assert.Equal(t, float64(i+1), w)
	}
	_, ok := a.Weight("gold")
	assert.False(t, ok)
}

func TestParseAssetClass(t *testing.T) {
	got, ok := ParseAssetClass(" Tech ")
	require.True(t, ok)
	assert.Equal(t, Tech, got)

	_, ok = ParseAssetClass("crypto")
	assert.False(t, ok)
}

func TestLookupAsset(t *testing.T) {
	for _, asset := range AssetClasses {
		info, ok := LookupAsset(asset)
		require.True(t, ok, asset)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
}

func TestProgressionState_IsCompleted(t *testing.T) {
	s := ProgressionState{Completed: []int{1, 2}}
	assert.True(t, s.IsCompleted(2))
	assert.False(t, s.IsCompleted(3))
}
