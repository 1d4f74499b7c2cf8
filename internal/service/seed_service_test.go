package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eclatdelune/lune_api/internal/repository"
	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/store/memstore"
)

func newSeed(ms *memstore.Store) *service.SeedService {
	return service.NewSeedService(
		repository.NewProductRepository(ms),
		repository.NewLookbookRepository(ms),
		repository.NewJournalRepository(ms),
	)
}

func TestSeedIsIdempotent(t *testing.T) {
	ms := memstore.New()
	svc := newSeed(ms)
	ctx := context.Background()

	first, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, first.Products)
	require.Equal(t, 1, first.Lookbook)
	require.Equal(t, 1, first.Journal)

	second, err := svc.Seed(ctx)
	require.NoError(t, err)
	require.Zero(t, second.Products)
	require.Zero(t, second.Lookbook)
	require.Zero(t, second.Journal)

	require.Equal(t, 2, ms.Count(repository.ColProducts))
	require.Equal(t, 1, ms.Count(repository.ColLookbook))
	require.Equal(t, 1, ms.Count(repository.ColJournalPosts))
}

func TestSeedFillsOnlyMissingSlugs(t *testing.T) {
	ms := memstore.New()
	catalog := newCatalog(ms)
	ctx := context.Background()

	// One sample slug already exists; seeding must skip it.
	_, err := catalog.CreateProduct(ctx, &service.CreateProductRequest{
		Title:    "Pre-existing Selene",
		Slug:     "selene-sheath-dress",
		Price:    price(1),
		Category: "New",
	})
	require.NoError(t, err)

	result, err := newSeed(ms).Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, result.Products)

	// The pre-existing document wins; the sample was not inserted over it.
	p, err := catalog.GetProduct(ctx, "selene-sheath-dress")
	require.NoError(t, err)
	require.Equal(t, "Pre-existing Selene", p.Title)
}
