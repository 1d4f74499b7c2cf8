package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/store"
)

func TestInsertAndFind(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, err := s.Insert(ctx, "product", models.Product{Title: "Selene Sheath Dress", Slug: "selene", Category: models.CategoryReadyToWear})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	_, err = s.Insert(ctx, "product", models.Product{Title: "Nova Organza Gown", Slug: "nova", Category: models.CategoryOccasion})
	require.NoError(t, err)

	var all []models.Product
	require.NoError(t, s.Find(ctx, "product", store.Filter{}, 0, &all))
	require.Len(t, all, 2)

	var occasion []models.Product
	require.NoError(t, s.Find(ctx, "product", store.Where("category", models.CategoryOccasion), 0, &occasion))
	require.Len(t, occasion, 1)
	require.Equal(t, "nova", occasion[0].Slug)
}

func TestFindLimit(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Insert(ctx, "product", models.Product{Title: "P", Slug: "same"})
		require.NoError(t, err)
	}

	var limited []models.Product
	require.NoError(t, s.Find(ctx, "product", store.Where("slug", "same"), 1, &limited))
	require.Len(t, limited, 1)
}

func TestUpdateSet(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, err := s.Insert(ctx, "loyaltyuser", models.NewLoyaltyUser("a@x.com"))
	require.NoError(t, err)

	require.NoError(t, s.UpdateSet(ctx, "loyaltyuser", id, map[string]interface{}{"photons": 42}))

	var users []models.LoyaltyUser
	require.NoError(t, s.Find(ctx, "loyaltyuser", store.Where("email", "a@x.com"), 1, &users))
	require.Len(t, users, 1)
	require.Equal(t, 42, users[0].Photons)
}

func TestFindOrInsert(t *testing.T) {
	s := New()
	ctx := context.Background()

	defaults := map[string]interface{}{"email": "new@x.com", "photons": 0, "tier": models.TierNova}

	var user models.LoyaltyUser
	created, err := s.FindOrInsert(ctx, "loyaltyuser", store.Where("email", "new@x.com"), defaults, &user)
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, 1, s.Count("loyaltyuser"))

	created, err = s.FindOrInsert(ctx, "loyaltyuser", store.Where("email", "new@x.com"), defaults, &user)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "new@x.com", user.Email)
	require.Equal(t, models.TierNova, user.Tier)
	require.Equal(t, 1, s.Count("loyaltyuser"))
}

func TestIncrementUpsert(t *testing.T) {
	s := New()
	ctx := context.Background()

	defaults := map[string]interface{}{"email": "a@x.com", "tier": models.TierNova}

	found, _, err := s.IncrementUpsert(ctx, "loyaltyuser", store.Where("email", "a@x.com"), defaults, "photons", 5)
	require.NoError(t, err)
	require.False(t, found)

	found, total, err := s.IncrementUpsert(ctx, "loyaltyuser", store.Where("email", "a@x.com"), defaults, "photons", 5)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(10), total)
	require.Equal(t, 1, s.Count("loyaltyuser"))
}

func TestCollectionNames(t *testing.T) {
	s := New()
	ctx := context.Background()

	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = s.Insert(ctx, "product", models.Product{Title: "P", Slug: "p"})
	require.NoError(t, err)

	names, err = s.CollectionNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"product"}, names)
}

func TestFailWith(t *testing.T) {
	s := New()
	s.FailWith = errors.New("connection refused")
	ctx := context.Background()

	_, err := s.Insert(ctx, "product", models.Product{})
	require.Error(t, err)

	var out []models.Product
	require.Error(t, s.Find(ctx, "product", store.Filter{}, 0, &out))

	_, err = s.CollectionNames(ctx)
	require.Error(t, err)
}
