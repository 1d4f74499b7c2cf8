package repository

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/store"
)

// JournalRepository handles data access for journal posts.
type JournalRepository struct {
	store DocumentStore
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(s DocumentStore) *JournalRepository {
	return &JournalRepository{store: s}
}

// GetAll returns every journal post, unfiltered and unsorted.
func (r *JournalRepository) GetAll(ctx context.Context) ([]models.JournalPost, error) {
	posts := []models.JournalPost{}
	if err := r.store.Find(ctx, ColJournalPosts, store.Filter{}, 0, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a journal post and returns the store-generated id.
func (r *JournalRepository) Create(ctx context.Context, post *models.JournalPost) (string, error) {
	return r.store.Insert(ctx, ColJournalPosts, post)
}

// Slugs returns the set of slugs currently present in the collection.
func (r *JournalRepository) Slugs(ctx context.Context) (map[string]bool, error) {
	var posts []models.JournalPost
	if err := r.store.Find(ctx, ColJournalPosts, store.Filter{}, 0, &posts); err != nil {
		return nil, err
	}
	slugs := make(map[string]bool, len(posts))
	for _, p := range posts {
		slugs[p.Slug] = true
	}
	return slugs, nil
}
