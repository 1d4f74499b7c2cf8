package repository

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/store"
)

// LookbookRepository handles data access for lookbook entries.
type LookbookRepository struct {
	store DocumentStore
}

// NewLookbookRepository creates a new LookbookRepository.
func NewLookbookRepository(s DocumentStore) *LookbookRepository {
	return &LookbookRepository{store: s}
}

// GetBySeason returns all entries for a season in store-native order.
// Sorting by display order is the caller's concern.
func (r *LookbookRepository) GetBySeason(ctx context.Context, season string) ([]models.LookbookEntry, error) {
	entries := []models.LookbookEntry{}
	if err := r.store.Find(ctx, ColLookbook, store.Where("season", season), 0, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Create inserts a lookbook entry and returns the store-generated id.
func (r *LookbookRepository) Create(ctx context.Context, entry *models.LookbookEntry) (string, error) {
	return r.store.Insert(ctx, ColLookbook, entry)
}

// Slugs returns the set of slugs currently present in the collection.
func (r *LookbookRepository) Slugs(ctx context.Context) (map[string]bool, error) {
	var entries []models.LookbookEntry
	if err := r.store.Find(ctx, ColLookbook, store.Filter{}, 0, &entries); err != nil {
		return nil, err
	}
	slugs := make(map[string]bool, len(entries))
	for _, e := range entries {
		slugs[e.Slug] = true
	}
	return slugs, nil
}
