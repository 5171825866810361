package dto

// CreateCommentReq represents the request body for creating a comment on a
// stock. It uses Gin's binding tags for validation (required, length limits).
type CreateCommentReq struct {
	Title   string `json:"title" binding:"required,min=5,max=280"`
	Content string `json:"content" binding:"required,min=5,max=280"`
}
