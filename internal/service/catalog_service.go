package service

import (
	"context"
	"sort"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/repository"
	"github.com/eclatdelune/lune_api/internal/utils"
)

// CatalogService handles product, lookbook, and journal reads plus product
// creation.
type CatalogService struct {
	productRepo  *repository.ProductRepository
	lookbookRepo *repository.LookbookRepository
	journalRepo  *repository.JournalRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(productRepo *repository.ProductRepository, lookbookRepo *repository.LookbookRepository, journalRepo *repository.JournalRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		lookbookRepo: lookbookRepo,
		journalRepo:  journalRepo,
	}
}

// CreateProductRequest represents the request to create a new product.
// Pointer fields distinguish an omitted value from a zero one so that
// creation-time defaults apply only when the client left the field out.
type CreateProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Images      []string `json:"images"`
	GLBURL      *string  `json:"glb_url"`
	Colorways   []string `json:"colorways"`
	Sizes       []string `json:"sizes"`
	CO2SavedKg  *float64 `json:"co2_saved_kg" binding:"omitempty,gte=0"`
	InStock     *bool    `json:"in_stock"`
}

// ListProducts returns all products, optionally filtered by exact category.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx, category)
}

// GetProduct returns the product with the given slug.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(ctx, slug)
}

// CreateProduct validates the request, applies defaults, and inserts the
// product. It returns the store-generated id. Duplicate slugs are not
// rejected here; only the seed routine guards slug uniqueness.
func (s *CatalogService) CreateProduct(ctx context.Context, req *CreateProductRequest) (string, error) {
	category := models.Category(req.Category)
	if !category.IsValid() {
		return "", utils.ErrInvalidCategory
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       *req.Price,
		Category:    category,
		Images:      req.Images,
		GLBURL:      req.GLBURL,
		Colorways:   req.Colorways,
		Sizes:       req.Sizes,
		CO2SavedKg:  req.CO2SavedKg,
		InStock:     inStock,
	}
	product.Normalize()

	return s.productRepo.Create(ctx, product)
}

// GetLookbook returns all entries for a season sorted ascending by display
// order. The sort is stable so entries sharing an order keep store order;
// entries stored without an order sort as zero.
func (s *CatalogService) GetLookbook(ctx context.Context, season string) ([]models.LookbookEntry, error) {
	entries, err := s.lookbookRepo.GetBySeason(ctx, season)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Order < entries[j].Order
	})
	return entries, nil
}

// ListJournal returns every journal post.
func (s *CatalogService) ListJournal(ctx context.Context) ([]models.JournalPost, error) {
	return s.journalRepo.GetAll(ctx)
}
