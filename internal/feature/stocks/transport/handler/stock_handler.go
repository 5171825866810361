// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stocknotes/internal/feature/stocks/domain/entity"
	"stocknotes/internal/feature/stocks/transport/http/dto"
	"stocknotes/internal/feature/stocks/usecase"
)

// StockUsecase は株式レコード操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type StockUsecase interface {
	ListStocks(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error)
	GetStock(ctx context.Context, id uint) (*entity.Stock, error)
	CreateStock(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
	UpdateStock(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error)
	DeleteStock(ctx context.Context, id uint) (*entity.Stock, error)
}

// StockHandler は株式レコードのHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// parseID はパスパラメータ:idを正の整数として解釈します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// List は任意のフィルタに一致する株式の一覧をコメント付きで返すAPIです。
//
// エンドポイント例:
// GET /api/stocks?symbol=AAP&companyName=Apple
func (h *StockHandler) List(c *gin.Context) {
	var q dto.StockQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	stocks, err := h.uc.ListStocks(c.Request.Context(), usecase.StockFilter{
		Symbol:      q.Symbol,
		CompanyName: q.CompanyName,
	})
	if err != nil {
		slog.Error("list stocks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}

	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.FromStock(s))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで株式を1件取得するAPIです。存在しない場合は404を返します。
func (h *StockHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stock, err := h.uc.GetStock(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("get stock failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.FromStock(*stock))
}

// Create は新しい株式を登録するAPIです。
// - リクエストJSONをCreateStockReqにバインドし、バリデーションエラー時は400を返却
// - 成功時は割り当てられたIDを含む表現とともに201を返却
func (h *StockHandler) Create(c *gin.Context) {
	var req dto.CreateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create stock validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	stock := &entity.Stock{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    decimal.NewFromFloat(req.Purchase),
		LastDiv:     decimal.NewFromFloat(req.LastDiv),
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	}
	created, err := h.uc.CreateStock(c.Request.Context(), stock)
	if err != nil {
		slog.Error("create stock failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromStock(*created))
}

// Update は株式の全可変フィールドを置き換えるAPIです。存在しない場合は404を返します。
// 作成と異なり、リクエストボディにバリデーション制約はありません。
func (h *StockHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	stock, err := h.uc.UpdateStock(c.Request.Context(), id, usecase.StockUpdate{
		Symbol:      req.Symbol,
		CompanyName: req.CompanyName,
		Purchase:    decimal.NewFromFloat(req.Purchase),
		LastDiv:     decimal.NewFromFloat(req.LastDiv),
		Industry:    req.Industry,
		MarketCap:   req.MarketCap,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("update stock failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.FromStock(*stock))
}

// Delete はIDで株式を削除するAPIです。
// 成功時は204を返し、レスポンスボディはありません。存在しない場合は404を返します。
func (h *StockHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.uc.DeleteStock(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock not found"})
			return
		}
		slog.Error("delete stock failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}
