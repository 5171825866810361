package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	commenthandler "stocknotes/internal/feature/comments/transport/handler"
	stockhandler "stocknotes/internal/feature/stocks/transport/handler"
	"stocknotes/internal/platform/http/handler"
)

func NewRouter(stocks *stockhandler.StockHandler, comments *commenthandler.CommentHandler) *gin.Engine {
	r := gin.Default()

	// ブラウザクライアント向けAPIのためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/stocks", stocks.List)
		api.GET("/stocks/:id", stocks.Get)
		api.POST("/stocks", stocks.Create)
		api.PUT("/stocks/:id", stocks.Update)
		api.DELETE("/stocks/:id", stocks.Delete)

		api.GET("/comments", comments.List)
		api.GET("/comments/:id", comments.Get)
		// 対象の株式に紐付けてコメントを作成
		api.POST("/comments/:stockId", comments.Create)
		api.PUT("/comments/:id", comments.Update)
		api.DELETE("/comments/:id", comments.Delete)
	}

	return r
}
