// Package dto defines data transfer objects for the stocks HTTP API.
package dto

import (
	commentdto "stocknotes/internal/feature/comments/transport/http/dto"
	"stocknotes/internal/feature/stocks/domain/entity"
)

// StockResponse represents a stock in API responses, including its comments.
type StockResponse struct {
	ID          uint                         `json:"id"`
	Symbol      string                       `json:"symbol"`
	CompanyName string                       `json:"companyName"`
	Purchase    float64                      `json:"purchase"`
	LastDiv     float64                      `json:"lastDiv"`
	Industry    string                       `json:"industry"`
	MarketCap   int64                        `json:"marketCap"`
	Comments    []commentdto.CommentResponse `json:"comments"`
}

// FromStock converts a domain stock into its API representation.
// Monetary fields carry at most 2 decimal digits, so the float conversion
// is exact for every value the store can hold.
func FromStock(s entity.Stock) StockResponse {
	comments := make([]commentdto.CommentResponse, 0, len(s.Comments))
	for _, c := range s.Comments {
		comments = append(comments, commentdto.FromComment(c))
	}
	return StockResponse{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase.InexactFloat64(),
		LastDiv:     s.LastDiv.InexactFloat64(),
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
		Comments:    comments,
	}
}
