package dto

// UpdateCommentReq represents the request body for updating a comment.
// Only title and content are mutable; CreatedOn and StockID never change.
type UpdateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}
