package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/repository"
	"github.com/eclatdelune/lune_api/internal/store/memstore"
)

func TestLoyaltyFindOrCreate(t *testing.T) {
	ms := memstore.New()
	repo := repository.NewLoyaltyRepository(ms)
	ctx := context.Background()

	user, created, err := repo.FindOrCreate(ctx, "new@example.com")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "new@example.com", user.Email)
	require.Equal(t, 0, user.Photons)
	require.Equal(t, models.TierNova, user.Tier)

	// Second call finds the same profile without duplicating it.
	user, created, err = repo.FindOrCreate(ctx, "new@example.com")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 0, user.Photons)
	require.Equal(t, 1, ms.Count(repository.ColLoyaltyUsers))
}

func TestLoyaltyAddPhotons(t *testing.T) {
	ms := memstore.New()
	repo := repository.NewLoyaltyRepository(ms)
	ctx := context.Background()

	// First credit provisions the profile with the amount as its balance.
	created, _, err := repo.AddPhotons(ctx, "a@x.com", 5)
	require.NoError(t, err)
	require.True(t, created)

	created, total, err := repo.AddPhotons(ctx, "a@x.com", 5)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 10, total)
	require.Equal(t, 1, ms.Count(repository.ColLoyaltyUsers))

	user, _, err := repo.FindOrCreate(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, 10, user.Photons)
	require.Equal(t, models.TierNova, user.Tier)
}
