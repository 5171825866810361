// Package usecase はstocksフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"stocknotes/internal/feature/stocks/domain/entity"
)

const (
	// moneyScale は金額フィールドの小数点以下の桁数です。
	moneyScale = 2
)

// StockFilter は一覧クエリを絞り込むオプションのフィルタです。
// 空のフィールドは制約を課しません。マッチは大文字小文字を区別する部分一致です。
type StockFilter struct {
	Symbol      string
	CompanyName string
}

// StockUpdate は更新時に置き換えられる可変フィールドの完全な集合です。
// 部分更新はサポートされません。呼び出し側は常に全フィールドを指定します。
type StockUpdate struct {
	Symbol      string
	CompanyName string
	Purchase    decimal.Decimal
	LastDiv     decimal.Decimal
	Industry    string
	MarketCap   int64
}

// StockRepository は株式レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type StockRepository interface {
	// FindAll はフィルタに一致する株式を返します。withCommentsが真の場合、
	// 各株式のコメントを同時に読み込みます。
	FindAll(ctx context.Context, filter StockFilter, withComments bool) ([]entity.Stock, error)

	// FindByID はIDで株式を取得します。存在しない場合、ErrStockNotFoundを返します。
	FindByID(ctx context.Context, id uint, withComments bool) (*entity.Stock, error)

	// Create は新しい株式を永続化し、ストアが割り当てたIDを設定します。
	Create(ctx context.Context, stock *entity.Stock) error

	// Update はIDで株式を特定し、全可変フィールドをアトミックに置き換えます。
	// 存在しない場合、ErrStockNotFoundを返します。
	Update(ctx context.Context, id uint, fields StockUpdate) (*entity.Stock, error)

	// Delete は株式を削除し、削除前のスナップショットを返します。
	// 存在しない場合、ErrStockNotFoundを返します。
	Delete(ctx context.Context, id uint) (*entity.Stock, error)

	// Exists はレコード全体を取得せずに株式の存在を確認します。
	Exists(ctx context.Context, id uint) (bool, error)
}

// stockUsecase は株式レコード操作のユースケースを実装します。
type stockUsecase struct {
	stocks StockRepository
}

// NewStockUsecase はstockUsecaseの新しいインスタンスを生成します。
func NewStockUsecase(stocks StockRepository) *stockUsecase {
	return &stockUsecase{stocks: stocks}
}

// ListStocks はフィルタに一致するすべての株式をコメント付きで返します。
// 一覧ビューはレコードごとの追加呼び出しなしでコメントを表示できる必要が
// あるため、常にコメントを同時読み込みします。結果件数の上限はありません。
func (u *stockUsecase) ListStocks(ctx context.Context, filter StockFilter) ([]entity.Stock, error) {
	return u.stocks.FindAll(ctx, filter, true)
}

// GetStock はIDで株式をコメント付きで取得します。
func (u *stockUsecase) GetStock(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.stocks.FindByID(ctx, id, true)
}

// CreateStock は新しい株式を登録します。呼び出し側が設定したIDは無視され、
// ストアが新しいIDを割り当てます。金額フィールドは小数点以下2桁に丸められます。
func (u *stockUsecase) CreateStock(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	stock.ID = 0
	stock.Purchase = stock.Purchase.Round(moneyScale)
	stock.LastDiv = stock.LastDiv.Round(moneyScale)
	if err := u.stocks.Create(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// UpdateStock は株式の全可変フィールドを置き換えます。マージロジックはなく、
// 全置換が契約のすべてです。対象が存在しない場合、ErrStockNotFoundを返します。
func (u *stockUsecase) UpdateStock(ctx context.Context, id uint, fields StockUpdate) (*entity.Stock, error) {
	fields.Purchase = fields.Purchase.Round(moneyScale)
	fields.LastDiv = fields.LastDiv.Round(moneyScale)
	return u.stocks.Update(ctx, id, fields)
}

// DeleteStock は株式を削除し、削除前のスナップショットを返します。
// 参照しているコメントはそのまま残ります（カスケードなし）。
func (u *stockUsecase) DeleteStock(ctx context.Context, id uint) (*entity.Stock, error) {
	return u.stocks.Delete(ctx, id)
}

// StockExists は株式の存在を確認します。コメントを株式に紐付ける前の
// 外部キー検証として、commentsフィーチャーから利用されます。
func (u *stockUsecase) StockExists(ctx context.Context, id uint) (bool, error) {
	return u.stocks.Exists(ctx, id)
}
