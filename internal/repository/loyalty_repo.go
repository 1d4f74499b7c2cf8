package repository

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/store"
)

// LoyaltyRepository handles data access for loyalty profiles, keyed by email.
// Provisioning and accrual use the adapter's atomic upsert primitives so
// concurrent first-touch requests for one email cannot create duplicate
// profiles or lose increments.
type LoyaltyRepository struct {
	store DocumentStore
}

// NewLoyaltyRepository creates a new LoyaltyRepository.
func NewLoyaltyRepository(s DocumentStore) *LoyaltyRepository {
	return &LoyaltyRepository{store: s}
}

// FindOrCreate returns the profile for the email, provisioning a default one
// when none exists. created reports whether provisioning happened.
func (r *LoyaltyRepository) FindOrCreate(ctx context.Context, email string) (*models.LoyaltyUser, bool, error) {
	var user models.LoyaltyUser
	created, err := r.store.FindOrInsert(ctx, ColLoyaltyUsers, store.Where("email", email),
		profileDefaults(email), &user)
	if err != nil {
		return nil, false, err
	}
	if created {
		user = models.NewLoyaltyUser(email)
	}
	return &user, created, nil
}

// AddPhotons credits amount photons to the profile for the email, creating
// the profile with a balance of amount when none exists. total is the
// post-credit balance and is only meaningful when created is false.
func (r *LoyaltyRepository) AddPhotons(ctx context.Context, email string, amount int) (created bool, total int, err error) {
	found, newTotal, err := r.store.IncrementUpsert(ctx, ColLoyaltyUsers, store.Where("email", email),
		map[string]interface{}{"email": email, "tier": models.TierNova}, "photons", int64(amount))
	if err != nil {
		return false, 0, err
	}
	return !found, int(newTotal), nil
}

func profileDefaults(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":   email,
		"photons": 0,
		"tier":    models.TierNova,
	}
}
