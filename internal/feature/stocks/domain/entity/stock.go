// Package entity defines the domain models for the stocks feature.
package entity

import (
	"github.com/shopspring/decimal"

	commententity "stocknotes/internal/feature/comments/domain/entity"
)

// Stock represents a financial instrument record, the primary entity of the
// system. Purchase and LastDiv are monetary values with a fixed 2-decimal
// precision, stored as decimal(18,2).
//
// A stock owns zero or more comments. The relation is eager-loaded on reads
// but carries no database-level constraint: comments keep their stock_id
// untouched when the stock is deleted (see comments/domain/entity).
type Stock struct {
	ID          uint                    `gorm:"primaryKey"`
	Symbol      string                  `gorm:"size:10;not null;index"`
	CompanyName string                  `gorm:"size:30;not null"`
	Purchase    decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	LastDiv     decimal.Decimal         `gorm:"type:decimal(18,2);not null"`
	Industry    string                  `gorm:"size:20;not null"`
	MarketCap   int64                   `gorm:"not null"`
	Comments    []commententity.Comment `gorm:"foreignKey:StockID"`
}
