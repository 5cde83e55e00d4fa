package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/services"
)

// --- mock holding service ---

type mockHoldingService struct {
	createFn  func(in services.HoldingInput) (*models.Holding, error)
	getAllFn  func(page pagination.PageRequest, portfolioID *string) (*pagination.PageResponse[models.Holding], error)
	getByIDFn func(id string) (*models.Holding, error)
	updateFn  func(id string, in services.HoldingUpdate) (*models.Holding, error)
	deleteFn  func(id string) error
}

var _ services.HoldingServicer = (*mockHoldingService)(nil)

func (m *mockHoldingService) CreateHolding(_ context.Context, in services.HoldingInput) (*models.Holding, error) {
	if m.createFn != nil {
		return m.createFn(in)
	}
	return nil, nil
}

func (m *mockHoldingService) GetHoldings(_ context.Context, page pagination.PageRequest, portfolioID *string) (*pagination.PageResponse[models.Holding], error) {
	if m.getAllFn != nil {
		return m.getAllFn(page, portfolioID)
	}
	resp := pagination.NewPageResponse([]models.Holding{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockHoldingService) GetHoldingByID(_ context.Context, id string) (*models.Holding, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockHoldingService) UpdateHolding(_ context.Context, id string, in services.HoldingUpdate) (*models.Holding, error) {
	if m.updateFn != nil {
		return m.updateFn(id, in)
	}
	return nil, nil
}

func (m *mockHoldingService) DeleteHolding(_ context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

// --- router setup ---

func setupHoldingRouter(handler *HoldingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/holdings", handler.CreateHolding)
	r.GET("/holdings", handler.GetHoldings)
	r.GET("/holdings/:id", handler.GetHolding)
	r.PUT("/holdings/:id", handler.UpdateHolding)
	r.DELETE("/holdings/:id", handler.DeleteHolding)
	return r
}

// --- tests ---

func TestHoldingHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.HoldingInput
		svc := &mockHoldingService{
			createFn: func(in services.HoldingInput) (*models.Holding, error) {
				got = in
				return &models.Holding{Base: models.Base{ID: otherTestID}, PortfolioID: in.PortfolioID, Ticker: "VWCE"}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"portfolio_id":"`+testID+`","ticker":"vwce","shares":12.5,"avg_price":98.4,"purchase_date":"2025-05-02"}`)

		assertStatus(t, rec, http.StatusCreated)
		if got.PortfolioID != testID || got.Ticker != "vwce" {
			t.Errorf("unexpected input %+v", got)
		}
		if !got.Shares.Equal(decimal.RequireFromString("12.5")) || got.CurrentPrice != nil {
			t.Errorf("unexpected shares/current price %s / %v", got.Shares, got.CurrentPrice)
		}
		if got.PurchaseDate.String() != "2025-05-02" {
			t.Errorf("unexpected purchase date %s", got.PurchaseDate)
		}
		holding := parseJSON(t, rec)["holding"].(map[string]interface{})
		if holding["ticker"] != "VWCE" {
			t.Errorf("unexpected holding %v", holding)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"missing portfolio", `{"ticker":"VWCE","shares":1,"avg_price":10,"purchase_date":"2025-05-02"}`},
		{"zero shares", `{"portfolio_id":"` + testID + `","ticker":"VWCE","shares":0,"avg_price":10,"purchase_date":"2025-05-02"}`},
		{"negative price", `{"portfolio_id":"` + testID + `","ticker":"VWCE","shares":1,"avg_price":-10,"purchase_date":"2025-05-02"}`},
		{"missing purchase date", `{"portfolio_id":"` + testID + `","ticker":"VWCE","shares":1,"avg_price":10}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 for "+tt.name, func(t *testing.T) {
			r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

			rec := doRequest(r, "POST", "/holdings", tt.body)

			assertStatus(t, rec, http.StatusBadRequest)
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 404 for unknown portfolio", func(t *testing.T) {
		svc := &mockHoldingService{
			createFn: func(_ services.HoldingInput) (*models.Holding, error) {
				return nil, apperrors.ErrPortfolioNotFound
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "POST", "/holdings",
			`{"portfolio_id":"`+otherTestID+`","ticker":"VWCE","shares":1,"avg_price":10,"purchase_date":"2025-05-02"}`)

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "PORTFOLIO_NOT_FOUND")
	})
}

func TestHoldingHandler_List(t *testing.T) {
	t.Run("passes portfolio filter", func(t *testing.T) {
		var got *string
		svc := &mockHoldingService{
			getAllFn: func(page pagination.PageRequest, portfolioID *string) (*pagination.PageResponse[models.Holding], error) {
				got = portfolioID
				resp := pagination.NewPageResponse([]models.Holding{{Ticker: "VWCE"}}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings?portfolio_id="+testID, "")

		assertStatus(t, rec, http.StatusOK)
		if got == nil || *got != testID {
			t.Errorf("expected portfolio filter %s, got %v", testID, got)
		}
		if parseJSON(t, rec)["total_items"].(float64) != 1 {
			t.Error("expected 1 holding")
		}
	})

	t.Run("no filter", func(t *testing.T) {
		called := false
		svc := &mockHoldingService{
			getAllFn: func(_ pagination.PageRequest, portfolioID *string) (*pagination.PageResponse[models.Holding], error) {
				called = true
				if portfolioID != nil {
					t.Errorf("expected no filter, got %s", *portfolioID)
				}
				resp := pagination.NewPageResponse([]models.Holding{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings", "")

		assertStatus(t, rec, http.StatusOK)
		if !called {
			t.Error("expected the service to be called")
		}
	})

	t.Run("returns 400 for malformed portfolio id", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "GET", "/holdings?portfolio_id=abc", "")

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestHoldingHandler_GetUpdateDelete(t *testing.T) {
	t.Run("get returns 404 when missing", func(t *testing.T) {
		svc := &mockHoldingService{
			getByIDFn: func(_ string) (*models.Holding, error) {
				return nil, apperrors.ErrHoldingNotFound
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "GET", "/holdings/"+testID, "")

		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "HOLDING_NOT_FOUND")
	})

	t.Run("update passes current price", func(t *testing.T) {
		var got services.HoldingUpdate
		svc := &mockHoldingService{
			updateFn: func(id string, in services.HoldingUpdate) (*models.Holding, error) {
				got = in
				return &models.Holding{Base: models.Base{ID: id}}, nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "PUT", "/holdings/"+testID, `{"current_price":104.25}`)

		assertStatus(t, rec, http.StatusOK)
		if got.CurrentPrice == nil || !got.CurrentPrice.Equal(decimal.RequireFromString("104.25")) {
			t.Errorf("expected current price 104.25, got %v", got.CurrentPrice)
		}
		if got.Shares != nil || got.Ticker != nil {
			t.Errorf("expected untouched fields to stay nil, got %+v", got)
		}
	})

	t.Run("update returns 400 for zero shares", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "PUT", "/holdings/"+testID, `{"shares":0}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("delete returns 200", func(t *testing.T) {
		var gotID string
		svc := &mockHoldingService{
			deleteFn: func(id string) error {
				gotID = id
				return nil
			},
		}
		r := setupHoldingRouter(NewHoldingHandler(svc))

		rec := doRequest(r, "DELETE", "/holdings/"+testID, "")

		assertStatus(t, rec, http.StatusOK)
		if gotID != testID {
			t.Errorf("expected id %s, got %s", testID, gotID)
		}
	})

	t.Run("delete returns 400 for invalid id", func(t *testing.T) {
		r := setupHoldingRouter(NewHoldingHandler(&mockHoldingService{}))

		rec := doRequest(r, "DELETE", "/holdings/not-a-uuid", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}
