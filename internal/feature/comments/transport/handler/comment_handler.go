// Package handler はcommentsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stocknotes/internal/feature/comments/domain/entity"
	"stocknotes/internal/feature/comments/transport/http/dto"
	"stocknotes/internal/feature/comments/usecase"
)

// CommentUsecase はコメント操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CommentUsecase interface {
	ListComments(ctx context.Context) ([]entity.Comment, error)
	GetComment(ctx context.Context, id uint) (*entity.Comment, error)
	CreateComment(ctx context.Context, stockID uint, comment *entity.Comment) (*entity.Comment, error)
	UpdateComment(ctx context.Context, id uint, title, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id uint) (*entity.Comment, error)
}

// CommentHandler はコメントのHTTPリクエストを処理します。
type CommentHandler struct {
	uc CommentUsecase
}

// NewCommentHandler は指定されたusecaseでCommentHandlerの新しいインスタンスを生成します。
func NewCommentHandler(uc CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// parseParam は指定されたパスパラメータを正の整数として解釈します。
func parseParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// List はすべてのコメントの一覧を返すAPIです。
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.uc.ListComments(c.Request.Context())
	if err != nil {
		slog.Error("list comments failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	out := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.FromComment(cm))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDでコメントを1件取得するAPIです。存在しない場合は404を返します。
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.uc.GetComment(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("get comment failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.FromComment(*comment))
}

// Create は指定された株式に新しいコメントを登録するAPIです。
// - リクエストJSONをCreateCommentReqにバインドし、バリデーションエラー時は400を返却
// - 対象の株式が存在しない場合は404を返却
// - 成功時は201を返却
func (h *CommentHandler) Create(c *gin.Context) {
	stockID, ok := parseParam(c, "stockId")
	if !ok {
		return
	}

	var req dto.CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comment := &entity.Comment{Title: req.Title, Content: req.Content}
	created, err := h.uc.CreateComment(c.Request.Context(), stockID, comment)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "stock does not exist"})
			return
		}
		slog.Error("create comment failed", "error", err, "stock_id", stockID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusCreated, dto.FromComment(*created))
}

// Update はコメントのタイトルと本文を置き換えるAPIです。存在しない場合は404を返します。
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update comment validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comment, err := h.uc.UpdateComment(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("update comment failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.FromComment(*comment))
}

// Delete はIDでコメントを削除するAPIです。
// 成功時は204を返し、レスポンスボディはありません。存在しない場合は404を返します。
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.uc.DeleteComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		slog.Error("delete comment failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}
