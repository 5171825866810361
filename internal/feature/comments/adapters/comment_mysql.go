// Package adapters はcommentsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stocknotes/internal/feature/comments/domain/entity"
	"stocknotes/internal/feature/comments/usecase"
)

// commentMySQL はCommentRepositoryインターフェースのMySQL実装です。
type commentMySQL struct {
	db *gorm.DB
}

// commentMySQLがCommentRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentRepository は指定されたgorm.DB接続でcommentMySQLの新しいインスタンスを生成します。
func NewCommentRepository(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// FindAll はすべてのコメントを返します。孤立したコメントも含まれます。
func (r *commentMySQL) FindAll(ctx context.Context) ([]entity.Comment, error) {
	var comments []entity.Comment
	if err := r.db.WithContext(ctx).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByID はIDでコメントを取得します。
// コメントが存在しない場合、usecase.ErrCommentNotFoundを返します。
func (r *commentMySQL) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

// Create はコメントをデータベースに追加し、割り当てられたIDをcommentに書き戻します。
func (r *commentMySQL) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update は単一の条件付きUPDATE文でタイトルと本文を置き換えます。
// 対象行が存在しない場合、usecase.ErrCommentNotFoundを返します。
func (r *commentMySQL) Update(ctx context.Context, id uint, title, content string) (*entity.Comment, error) {
	res := r.db.WithContext(ctx).Model(&entity.Comment{}).Where("id = ?", id).Updates(map[string]any{
		"title":   title,
		"content": content,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrCommentNotFound
	}

	var comment entity.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete はコメントを削除し、削除前のスナップショットを返します。
func (r *commentMySQL) Delete(ctx context.Context, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrCommentNotFound
	}
	return &comment, nil
}
