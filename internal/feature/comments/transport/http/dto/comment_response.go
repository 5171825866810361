// Package dto defines data transfer objects for the comments HTTP API.
package dto

import (
	"time"

	"stocknotes/internal/feature/comments/domain/entity"
)

// CommentResponse represents a comment in API responses.
// StockID is null for orphaned comments whose stock has been deleted.
type CommentResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	StockID   *uint     `json:"stockId"`
}

// FromComment converts a domain comment into its API representation.
func FromComment(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Title:     c.Title,
		Content:   c.Content,
		CreatedOn: c.CreatedOn,
		StockID:   c.StockID,
	}
}
