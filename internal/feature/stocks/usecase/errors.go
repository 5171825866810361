// Package usecase implements the business logic for the stocks feature.
package usecase

import "errors"

var (
	// ErrStockNotFound is returned when a stock cannot be found by ID.
	// Non-existence is a first-class outcome, not an exceptional condition:
	// the transport layer translates it into a "not found" response.
	ErrStockNotFound = errors.New("stock not found")
)
