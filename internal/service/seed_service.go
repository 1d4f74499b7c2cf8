package service

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/repository"
)

// SeedService inserts the built-in sample content. Seeding is idempotent by
// slug: a sample is only inserted when no existing document shares its slug,
// so repeated calls converge to zero insertions.
type SeedService struct {
	productRepo  *repository.ProductRepository
	lookbookRepo *repository.LookbookRepository
	journalRepo  *repository.JournalRepository
}

// NewSeedService constructs a SeedService.
func NewSeedService(productRepo *repository.ProductRepository, lookbookRepo *repository.LookbookRepository, journalRepo *repository.JournalRepository) *SeedService {
	return &SeedService{
		productRepo:  productRepo,
		lookbookRepo: lookbookRepo,
		journalRepo:  journalRepo,
	}
}

// SeedResult reports how many sample documents each collection received.
type SeedResult struct {
	Products int `json:"products"`
	Lookbook int `json:"lookbook"`
	Journal  int `json:"journal"`
}

// Seed inserts any sample documents whose slug is absent from a fresh read of
// each collection. Slug uniqueness is deliberately checked against an
// in-memory set rather than a store constraint, since none is declared.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	existing, err := s.productRepo.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sampleProducts {
		if existing[sampleProducts[i].Slug] {
			continue
		}
		p := sampleProducts[i]
		p.Normalize()
		if _, err := s.productRepo.Create(ctx, &p); err != nil {
			return nil, err
		}
		result.Products++
	}

	existing, err = s.lookbookRepo.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sampleLookbook {
		if existing[sampleLookbook[i].Slug] {
			continue
		}
		e := sampleLookbook[i]
		e.Normalize()
		if _, err := s.lookbookRepo.Create(ctx, &e); err != nil {
			return nil, err
		}
		result.Lookbook++
	}

	existing, err = s.journalRepo.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sampleJournal {
		if existing[sampleJournal[i].Slug] {
			continue
		}
		p := sampleJournal[i]
		if _, err := s.journalRepo.Create(ctx, &p); err != nil {
			return nil, err
		}
		result.Journal++
	}

	return result, nil
}

func strptr(s string) *string { return &s }
func f64ptr(f float64) *float64 { return &f }

var sampleProducts = []models.Product{
	{
		Title:       "Selene Sheath Dress",
		Slug:        "selene-sheath-dress",
		Description: strptr("A weightless satin silhouette with lunar drape."),
		Price:       680.0,
		Category:    models.CategoryReadyToWear,
		Images: []string{
			"https://images.unsplash.com/photo-1542060748-10c28b62716d?w=1400&q=80&auto=format&fit=crop",
		},
		Colorways:  []string{"Lunar Blush", "Eclipse Black"},
		Sizes:      []string{"XS", "S", "M", "L"},
		CO2SavedKg: f64ptr(2.4),
		InStock:    true,
	},
	{
		Title:       "Nova Organza Gown",
		Slug:        "nova-organza-gown",
		Description: strptr("Ethereal organza with hand-finished moonsheen."),
		Price:       1450.0,
		Category:    models.CategoryOccasion,
		Images: []string{
			"https://images.unsplash.com/photo-1520975954732-35dd226f1e9c?w=1400&q=80&auto=format&fit=crop",
		},
		Colorways:  []string{"Iridescent Pearl"},
		Sizes:      []string{"S", "M", "L"},
		CO2SavedKg: f64ptr(5.1),
		InStock:    true,
	},
}

var sampleLookbook = []models.LookbookEntry{
	{
		Season:       "fall-24",
		Title:        "Moonrise Over Silk",
		Slug:         "moonrise-over-silk",
		Image:        "https://images.unsplash.com/photo-1503342394123-480259ab08e2?w=1400&q=80&auto=format&fit=crop",
		ProductSlugs: []string{"selene-sheath-dress"},
		Order:        1,
	},
}

var sampleJournal = []models.JournalPost{
	{
		Title: "On Weightless Femininity",
		Slug:  "on-weightless-femininity",
		Cover: "https://images.unsplash.com/photo-1503342217505-b0a15cf70489?w=1400&q=80&auto=format&fit=crop",
	},
}
