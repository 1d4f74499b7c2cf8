package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range []Category{CategoryNew, CategoryReadyToWear, CategoryOccasion, CategoryAtelier} {
		require.True(t, c.IsValid(), c)
	}
	require.False(t, Category("Couture").IsValid())
	require.False(t, Category("").IsValid())
	require.False(t, Category("ready-to-wear").IsValid())
}

func TestTierIsValid(t *testing.T) {
	for _, tier := range []Tier{TierNova, TierLunar, TierEclipse} {
		require.True(t, tier.IsValid(), tier)
	}
	require.False(t, Tier("Solar").IsValid())
}

func TestProductNormalizeDefaults(t *testing.T) {
	p := Product{Title: "X", Slug: "x", Price: 1, Category: CategoryNew}
	p.Normalize()

	require.Equal(t, []string{}, p.Images)
	require.Equal(t, []string{}, p.Colorways)
	require.Equal(t, DefaultSizes, p.Sizes)
}

func TestProductNormalizeKeepsExplicitValues(t *testing.T) {
	p := Product{Sizes: []string{"M"}, Images: []string{"a"}, Colorways: []string{"b"}}
	p.Normalize()

	require.Equal(t, []string{"M"}, p.Sizes)
	require.Equal(t, []string{"a"}, p.Images)
	require.Equal(t, []string{"b"}, p.Colorways)
}

func TestInternalIDNeverSerialized(t *testing.T) {
	raw, err := json.Marshal(Product{Title: "X", Slug: "x"})
	require.NoError(t, err)
	require.NotContains(t, string(raw), "ObjectID")
	require.NotContains(t, string(raw), "\"ID\"")
	require.NotContains(t, string(raw), "\"_id\"")

	raw, err = json.Marshal(NewLoyaltyUser("a@x.com"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "\"ID\"")
}

func TestNewLoyaltyUserDefaults(t *testing.T) {
	u := NewLoyaltyUser("a@x.com")
	require.Equal(t, "a@x.com", u.Email)
	require.Zero(t, u.Photons)
	require.Equal(t, TierNova, u.Tier)
}
