// Package adapters はstocksフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stocknotes/internal/feature/stocks/domain/entity"
	"stocknotes/internal/feature/stocks/usecase"
)

// stockMySQL はStockRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type stockMySQL struct {
	db *gorm.DB
}

// stockMySQLがStockRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockRepository は指定されたgorm.DB接続でstockMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// FindAll はフィルタに一致する株式を返します。
// 部分一致には instr を使用します。LIKEと異なり大文字小文字を区別します
// （SQLiteではバイト単位、MySQLではカラムの照合順序に従います）。
func (r *stockMySQL) FindAll(ctx context.Context, filter usecase.StockFilter, withComments bool) ([]entity.Stock, error) {
	q := r.db.WithContext(ctx).Model(&entity.Stock{})
	if withComments {
		q = q.Preload("Comments")
	}
	if filter.Symbol != "" {
		q = q.Where("instr(symbol, ?) > 0", filter.Symbol)
	}
	if filter.CompanyName != "" {
		q = q.Where("instr(company_name, ?) > 0", filter.CompanyName)
	}

	var stocks []entity.Stock
	if err := q.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindByID はIDで株式を取得します。
// 株式が存在しない場合、usecase.ErrStockNotFoundを返します。
func (r *stockMySQL) FindByID(ctx context.Context, id uint, withComments bool) (*entity.Stock, error) {
	q := r.db.WithContext(ctx)
	if withComments {
		q = q.Preload("Comments")
	}

	var stock entity.Stock
	if err := q.First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// Create は株式をデータベースに追加し、割り当てられたIDをstockに書き戻します。
func (r *stockMySQL) Create(ctx context.Context, stock *entity.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// Update は単一の条件付きUPDATE文で全可変フィールドを置き換えます。
// 読み取り後書き込みではないため、並行する読み手が更新途中の状態を
// 観測することはありません。対象行が存在しない場合、usecase.ErrStockNotFoundを返します。
func (r *stockMySQL) Update(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error) {
	res := r.db.WithContext(ctx).Model(&entity.Stock{}).Where("id = ?", id).Updates(map[string]any{
		"symbol":       fields.Symbol,
		"company_name": fields.CompanyName,
		"purchase":     fields.Purchase,
		"last_div":     fields.LastDiv,
		"industry":     fields.Industry,
		"market_cap":   fields.MarketCap,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrStockNotFound
	}

	var stock entity.Stock
	if err := r.db.WithContext(ctx).Preload("Comments").First(&stock, id).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// Delete は株式を削除し、削除前のスナップショットを返します。
// 削除された株式を参照するコメントには一切触れません（カスケードなし）。
func (r *stockMySQL) Delete(ctx context.Context, id uint) (*entity.Stock, error) {
	var stock entity.Stock
	if err := r.db.WithContext(ctx).First(&stock, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(&entity.Stock{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	// 読み取りと削除の間に別の呼び出し側が先に削除した場合
	if res.RowsAffected == 0 {
		return nil, usecase.ErrStockNotFound
	}
	return &stock, nil
}

// Exists はレコードを取得せずに株式の存在を確認します。
func (r *stockMySQL) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Stock{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
