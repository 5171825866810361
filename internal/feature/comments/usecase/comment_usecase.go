// Package usecase はcommentsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"stocknotes/internal/feature/comments/domain/entity"
)

// CommentRepository はコメントの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type CommentRepository interface {
	// FindAll はすべてのコメントを返します。孤立したコメント（StockIDが
	// nil、または削除済みの株式を指すもの）も含まれます。
	FindAll(ctx context.Context) ([]entity.Comment, error)

	// FindByID はIDでコメントを取得します。存在しない場合、ErrCommentNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// Create は新しいコメントを永続化し、ストアが割り当てたIDを設定します。
	Create(ctx context.Context, comment *entity.Comment) error

	// Update はタイトルと本文をアトミックに置き換えます。
	// 存在しない場合、ErrCommentNotFoundを返します。
	Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error)

	// Delete はコメントを削除し、削除前のスナップショットを返します。
	// 存在しない場合、ErrCommentNotFoundを返します。
	Delete(ctx context.Context, id uint) (*entity.Comment, error)
}

// StockChecker は株式の存在確認を抽象化します。コメントを株式に紐付ける前の
// 外部キー検証に使用される、設計上唯一のエンティティ間結合点です。
type StockChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// commentUsecase はコメント操作のユースケースを実装します。
type commentUsecase struct {
	comments CommentRepository
	stocks   StockChecker
}

// NewCommentUsecase はcommentUsecaseの新しいインスタンスを生成します。
func NewCommentUsecase(comments CommentRepository, stocks StockChecker) *commentUsecase {
	return &commentUsecase{
		comments: comments,
		stocks:   stocks,
	}
}

// ListComments はすべてのコメントを返します。
func (u *commentUsecase) ListComments(ctx context.Context) ([]entity.Comment, error) {
	return u.comments.FindAll(ctx)
}

// GetComment はIDでコメントを取得します。
func (u *commentUsecase) GetComment(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.comments.FindByID(ctx, id)
}

// CreateComment は指定された株式に新しいコメントを登録します。
// 対象の株式が存在しない場合、ErrStockNotFoundを返します。
// CreatedOnは作成時に設定され、以後変更されません。
func (u *commentUsecase) CreateComment(ctx context.Context, stockID uint, comment *entity.Comment) (*entity.Comment, error) {
	ok, err := u.stocks.Exists(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrStockNotFound
	}

	comment.ID = 0
	comment.StockID = &stockID
	comment.CreatedOn = time.Now().UTC()
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment はコメントのタイトルと本文を置き換えます。
func (u *commentUsecase) UpdateComment(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	return u.comments.Update(ctx, id, title, content)
}

// DeleteComment はコメントを削除し、削除前のスナップショットを返します。
func (u *commentUsecase) DeleteComment(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.comments.Delete(ctx, id)
}
