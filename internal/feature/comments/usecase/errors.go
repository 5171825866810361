// Package usecase implements the business logic for the comments feature.
package usecase

import "errors"

var (
	// ErrCommentNotFound is returned when a comment cannot be found by ID.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrStockNotFound is returned when creating a comment against a stock
	// that does not exist.
	ErrStockNotFound = errors.New("stock does not exist")
)
