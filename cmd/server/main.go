package main

import (
	"log"

	"stocknotes/internal/app/router"
	commentadapters "stocknotes/internal/feature/comments/adapters"
	commenthandler "stocknotes/internal/feature/comments/transport/handler"
	commentusecase "stocknotes/internal/feature/comments/usecase"
	stockadapters "stocknotes/internal/feature/stocks/adapters"
	stockhandler "stocknotes/internal/feature/stocks/transport/handler"
	stockusecase "stocknotes/internal/feature/stocks/usecase"
	"stocknotes/internal/platform/config"
	"stocknotes/internal/platform/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db（全リポジトリで共有される単一ハンドル）
	gdb := db.OpenDB(cfg.DB)

	// Repository
	stockRepo := stockadapters.NewStockRepository(gdb)
	commentRepo := commentadapters.NewCommentRepository(gdb)

	// Usecase
	// commentsはコメント作成前の外部キー検証のためにstocksのリポジトリを参照します
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, stockRepo)

	// Handler
	stockH := stockhandler.NewStockHandler(stockUC)
	commentH := commenthandler.NewCommentHandler(commentUC)

	// ルータ生成
	r := router.NewRouter(stockH, commentH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
