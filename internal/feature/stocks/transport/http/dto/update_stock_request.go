package dto

// UpdateStockReq represents the request body for replacing a stock's mutable
// fields. Unlike CreateStockReq it carries no binding constraints: the update
// path accepts an unvalidated full field set.
type UpdateStockReq struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	Purchase    float64 `json:"purchase"`
	LastDiv     float64 `json:"lastDiv"`
	Industry    string  `json:"industry"`
	MarketCap   int64   `json:"marketCap"`
}
