package service

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/models"
	"github.com/eclatdelune/lune_api/internal/repository"
)

// DefaultEarnAmount is the photon credit applied when an earn event does not
// carry an explicit amount.
const DefaultEarnAmount = 5

// Known earn event kinds. The kind is recorded on the request for future use
// but does not currently vary the awarded amount.
const (
	EarnKindView3D  = "view_3d"
	EarnKindShareAR = "share_ar"
	EarnKindRecycle = "recycle"
)

// LoyaltyService owns the Universe loyalty program rules: profile
// auto-provisioning and photon accrual.
type LoyaltyService struct {
	loyaltyRepo *repository.LoyaltyRepository
}

// NewLoyaltyService constructs a LoyaltyService.
func NewLoyaltyService(loyaltyRepo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{loyaltyRepo: loyaltyRepo}
}

// EarnRequest represents a photon earn event.
type EarnRequest struct {
	Email  string `json:"email" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
	Amount *int   `json:"amount" binding:"omitempty,gte=0"`
}

// EarnResult is the outcome of an earn event. Total is only meaningful when
// Created is false: a just-provisioned profile reports no running balance and
// the caller must re-fetch.
type EarnResult struct {
	Created bool
	Total   int
}

// GetProfile returns the loyalty profile for an email, provisioning a
// default profile (zero photons, Nova tier) when none exists.
func (s *LoyaltyService) GetProfile(ctx context.Context, email string) (*models.LoyaltyUser, error) {
	user, _, err := s.loyaltyRepo.FindOrCreate(ctx, email)
	return user, err
}

// Earn credits photons to the profile for the event's email. A missing
// profile is created directly with the credited amount as its balance.
func (s *LoyaltyService) Earn(ctx context.Context, req *EarnRequest) (*EarnResult, error) {
	amount := DefaultEarnAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	created, total, err := s.loyaltyRepo.AddPhotons(ctx, req.Email, amount)
	if err != nil {
		return nil, err
	}
	return &EarnResult{Created: created, Total: total}, nil
}
