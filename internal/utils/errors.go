package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("category must be 'New', 'Ready-to-Wear', 'Occasion', or 'Atelier'")
	ErrEmailRequired   = errors.New("email is required")
)
