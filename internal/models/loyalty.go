package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tier enumerates loyalty program tiers. A profile is created at TierNova and
// the tier is not recomputed from the photon balance in this scope.
type Tier string

const (
	TierNova    Tier = "Nova"
	TierLunar   Tier = "Lunar"
	TierEclipse Tier = "Eclipse"
)

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierNova, TierLunar, TierEclipse:
		return true
	}
	return false
}

// LoyaltyUser is a customer profile in the Universe loyalty program, keyed by
// email. Collection: "loyaltyuser". At most one profile should exist per email.
type LoyaltyUser struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email   string             `bson:"email" json:"email"`
	Photons int                `bson:"photons" json:"photons"`
	Tier    Tier               `bson:"tier" json:"tier"`
}

// NewLoyaltyUser returns a fresh default profile for the given email.
func NewLoyaltyUser(email string) LoyaltyUser {
	return LoyaltyUser{Email: email, Photons: 0, Tier: TierNova}
}
