package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	commententity "stocknotes/internal/feature/comments/domain/entity"
	"stocknotes/internal/feature/stocks/domain/entity"
	"stocknotes/internal/feature/stocks/transport/handler"
	"stocknotes/internal/feature/stocks/usecase"
)

// mockStockUsecase はStockUsecaseインターフェースのモック実装です。
type mockStockUsecase struct {
	ListStocksFunc  func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error)
	GetStockFunc    func(ctx context.Context, id uint) (*entity.Stock, error)
	CreateStockFunc func(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
	UpdateStockFunc func(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error)
	DeleteStockFunc func(ctx context.Context, id uint) (*entity.Stock, error)
}

func (m *mockStockUsecase) ListStocks(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
	return m.ListStocksFunc(ctx, filter)
}

func (m *mockStockUsecase) GetStock(ctx context.Context, id uint) (*entity.Stock, error) {
	return m.GetStockFunc(ctx, id)
}

func (m *mockStockUsecase) CreateStock(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	return m.CreateStockFunc(ctx, stock)
}

func (m *mockStockUsecase) UpdateStock(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error) {
	return m.UpdateStockFunc(ctx, id, fields)
}

func (m *mockStockUsecase) DeleteStock(ctx context.Context, id uint) (*entity.Stock, error) {
	return m.DeleteStockFunc(ctx, id)
}

func setupRouter(uc *mockStockUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewStockHandler(uc)
	r := gin.New()
	r.GET("/api/stocks", h.List)
	r.GET("/api/stocks/:id", h.Get)
	r.POST("/api/stocks", h.Create)
	r.PUT("/api/stocks/:id", h.Update)
	r.DELETE("/api/stocks/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// TestStockHandler_List は一覧APIのフィルタ受け渡しとレスポンス整形をテストします。
func TestStockHandler_List(t *testing.T) {
	stockID := uint(1)

	tests := []struct {
		name           string
		url            string
		mockList       func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: filters forwarded from query string",
			url:  "/api/stocks?symbol=AAP&companyName=Apple",
			mockList: func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
				assert.Equal(t, "AAP", filter.Symbol)
				assert.Equal(t, "Apple", filter.CompanyName)
				return []entity.Stock{
					{
						ID:          1,
						Symbol:      "AAPL",
						CompanyName: "Apple Inc",
						Purchase:    decimal.RequireFromString("150.25"),
						LastDiv:     decimal.RequireFromString("0.55"),
						Industry:    "Tech",
						MarketCap:   2500000000,
						Comments: []commententity.Comment{
							{ID: 9, Title: "great quarter", Content: "strong earnings", StockID: &stockID},
						},
					},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `[{"id":1,"symbol":"AAPL","companyName":"Apple Inc","purchase":150.25,` +
				`"lastDiv":0.55,"industry":"Tech","marketCap":2500000000,` +
				`"comments":[{"id":9,"title":"great quarter","content":"strong earnings",` +
				`"createdOn":"0001-01-01T00:00:00Z","stockId":1}]}]`,
		},
		{
			name: "success: empty store returns empty array",
			url:  "/api/stocks",
			mockList: func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
				assert.Equal(t, usecase.StockFilter{}, filter)
				return []entity.Stock{}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: store unavailable returns 500",
			url:  "/api/stocks",
			mockList: func(ctx context.Context, filter usecase.StockFilter) ([]entity.Stock, error) {
				return nil, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"store unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockStockUsecase{ListStocksFunc: tt.mockList})

			w := doRequest(r, http.MethodGet, tt.url, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestStockHandler_Get は1件取得APIのステータスコードをテストします。
func TestStockHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockGet        func(ctx context.Context, id uint) (*entity.Stock, error)
		expectedStatus int
	}{
		{
			name: "success",
			url:  "/api/stocks/7",
			mockGet: func(ctx context.Context, id uint) (*entity.Stock, error) {
				assert.Equal(t, uint(7), id)
				return &entity.Stock{ID: 7, Symbol: "AAPL",
					Purchase: decimal.RequireFromString("150.00"),
					LastDiv:  decimal.RequireFromString("0.50")}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found returns 404",
			url:  "/api/stocks/9999",
			mockGet: func(ctx context.Context, id uint) (*entity.Stock, error) {
				return nil, usecase.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id returns 400",
			url:            "/api/stocks/abc",
			mockGet:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store error returns 500",
			url:  "/api/stocks/7",
			mockGet: func(ctx context.Context, id uint) (*entity.Stock, error) {
				return nil, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockStockUsecase{GetStockFunc: tt.mockGet})

			w := doRequest(r, http.MethodGet, tt.url, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestStockHandler_Create は作成APIのバリデーションとレスポンスをテストします。
func TestStockHandler_Create(t *testing.T) {
	validBody := `{"symbol":"AAPL","companyName":"Apple Inc","purchase":12.345,` +
		`"lastDiv":0.55,"industry":"Tech","marketCap":2500000000}`

	tests := []struct {
		name           string
		body           string
		mockCreate     func(ctx context.Context, stock *entity.Stock) (*entity.Stock, error)
		expectedStatus int
	}{
		{
			name: "success: returns 201 with assigned id",
			body: validBody,
			mockCreate: func(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
				// ハンドラーはボディをそのまま渡し、丸めはusecaseが行う
				assert.True(t, stock.Purchase.Equal(decimal.RequireFromString("12.345")))
				stock.ID = 42
				return stock, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "validation: symbol over 10 chars returns 400",
			body:           `{"symbol":"TOOLONGSYMBOL","companyName":"X","purchase":10,"lastDiv":0.5,"industry":"Tech","marketCap":100}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation: purchase below 1 returns 400",
			body:           `{"symbol":"AAPL","companyName":"Apple","purchase":0.5,"lastDiv":0.5,"industry":"Tech","marketCap":100}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation: missing required fields returns 400",
			body:           `{"symbol":"AAPL"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation: malformed JSON returns 400",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error: store unavailable returns 500",
			body: validBody,
			mockCreate: func(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
				return nil, assert.AnError
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockStockUsecase{CreateStockFunc: tt.mockCreate})

			w := doRequest(r, http.MethodPost, "/api/stocks", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Contains(t, w.Body.String(), `"id":42`)
			}
		})
	}
}

// TestStockHandler_Update は更新APIが未検証ボディを受け付け、404を区別することをテストします。
func TestStockHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		body           string
		mockUpdate     func(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error)
		expectedStatus int
	}{
		{
			name: "success: full field set replaced",
			url:  "/api/stocks/1",
			body: `{"symbol":"AAPL2","companyName":"Apple Computer","purchase":175.3,"lastDiv":0.6,"industry":"Hardware","marketCap":3000000000}`,
			mockUpdate: func(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error) {
				assert.Equal(t, uint(1), id)
				assert.Equal(t, "AAPL2", fields.Symbol)
				assert.Equal(t, int64(3000000000), fields.MarketCap)
				return &entity.Stock{ID: 1, Symbol: "AAPL2",
					Purchase: fields.Purchase, LastDiv: fields.LastDiv}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			// 作成と異なり、更新ボディには制約がない
			name: "success: out-of-range values are accepted on update",
			url:  "/api/stocks/1",
			body: `{"symbol":"WAYTOOLONGSYMBOL","companyName":"","purchase":0,"lastDiv":0,"industry":"","marketCap":0}`,
			mockUpdate: func(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error) {
				assert.Equal(t, "WAYTOOLONGSYMBOL", fields.Symbol)
				return &entity.Stock{ID: 1, Symbol: fields.Symbol,
					Purchase: fields.Purchase, LastDiv: fields.LastDiv}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found returns 404",
			url:  "/api/stocks/9999",
			body: `{"symbol":"AAPL"}`,
			mockUpdate: func(ctx context.Context, id uint, fields usecase.StockUpdate) (*entity.Stock, error) {
				return nil, usecase.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id returns 400",
			url:            "/api/stocks/abc",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockStockUsecase{UpdateStockFunc: tt.mockUpdate})

			w := doRequest(r, http.MethodPut, tt.url, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// TestStockHandler_Delete は削除APIのステータスコードをテストします。
func TestStockHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		mockDelete     func(ctx context.Context, id uint) (*entity.Stock, error)
		expectedStatus int
	}{
		{
			name: "success: returns 204 with no body",
			url:  "/api/stocks/3",
			mockDelete: func(ctx context.Context, id uint) (*entity.Stock, error) {
				assert.Equal(t, uint(3), id)
				return &entity.Stock{ID: 3, Symbol: "MSFT"}, nil
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found returns 404",
			url:  "/api/stocks/9999",
			mockDelete: func(ctx context.Context, id uint) (*entity.Stock, error) {
				return nil, usecase.ErrStockNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id returns 400",
			url:            "/api/stocks/0",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(&mockStockUsecase{DeleteStockFunc: tt.mockDelete})

			w := doRequest(r, http.MethodDelete, tt.url, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNoContent {
				assert.Zero(t, w.Body.Len(), "delete success should have no body")
			}
		})
	}
}
