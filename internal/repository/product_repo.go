package repository

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/store"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	store DocumentStore
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(s DocumentStore) *ProductRepository {
	return &ProductRepository{store: s}
}

// GetAll returns all products with an optional exact category filter.
// When category is an empty string, the filter is ignored.
func (r *ProductRepository) GetAll(ctx context.Context, category string) ([]models.Product, error) {
	filter := store.Filter{}
	if category != "" {
		filter = filter.And("category", category)
	}
	products := []models.Product{}
	if err := r.store.Find(ctx, ColProducts, filter, 0, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug returns the first product whose slug matches exactly.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var products []models.Product
	if err := r.store.Find(ctx, ColProducts, store.Where("slug", slug), 1, &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, utils.ErrProductNotFound
	}
	return &products[0], nil
}

// Create inserts a product and returns the store-generated id.
// Slug uniqueness is not enforced here; duplicate slugs are possible.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	return r.store.Insert(ctx, ColProducts, product)
}

// Slugs returns the set of slugs currently present in the collection.
func (r *ProductRepository) Slugs(ctx context.Context) (map[string]bool, error) {
	var products []models.Product
	if err := r.store.Find(ctx, ColProducts, store.Filter{}, 0, &products); err != nil {
		return nil, err
	}
	slugs := make(map[string]bool, len(products))
	for _, p := range products {
		slugs[p.Slug] = true
	}
	return slugs, nil
}
