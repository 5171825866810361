package dto

// CreateStockReq represents the request body for registering a stock.
// It uses Gin's binding tags for validation (required, length and range limits).
type CreateStockReq struct {
	Symbol      string  `json:"symbol" binding:"required,max=10"`
	CompanyName string  `json:"companyName" binding:"required,max=30"`
	Purchase    float64 `json:"purchase" binding:"required,gte=1,lte=1000000000"`
	LastDiv     float64 `json:"lastDiv" binding:"required,gte=0.001,lte=100"`
	Industry    string  `json:"industry" binding:"required,max=20"`
	MarketCap   int64   `json:"marketCap" binding:"required,gte=1,lte=5000000000"`
}
