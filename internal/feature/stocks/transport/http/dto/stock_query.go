package dto

// StockQuery carries the optional list filters from the query string.
// Either, both, or neither field may be set; empty fields impose no constraint.
type StockQuery struct {
	Symbol      string `form:"symbol"`
	CompanyName string `form:"companyName"`
}
