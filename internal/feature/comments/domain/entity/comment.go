// Package entity defines the domain models for the comments feature.
package entity

import "time"

// Comment represents a free-text note optionally attached to one stock.
// StockID is a weak back-reference by identifier only: deleting the stock
// does not remove or rewrite its comments, so an orphaned comment with a
// dangling StockID is a legal persisted state.
type Comment struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:280;not null"`
	Content   string    `gorm:"size:280;not null"`
	CreatedOn time.Time `gorm:"not null"`
	StockID   *uint     `gorm:"index"`
}
