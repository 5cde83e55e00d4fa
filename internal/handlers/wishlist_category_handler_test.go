package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/services"
)

// --- mock wishlist category service ---

type mockWishlistCategoryService struct {
	getAllFn func() ([]models.WishlistCategory, error)
	createFn func(name, icon string) (*models.WishlistCategory, error)
	deleteFn func(id string) error
}

var _ services.WishlistCategoryServicer = (*mockWishlistCategoryService)(nil)

func (m *mockWishlistCategoryService) GetWishlistCategories(_ context.Context) ([]models.WishlistCategory, error) {
	if m.getAllFn != nil {
		return m.getAllFn()
	}
	return models.PresetWishlistCategories, nil
}

func (m *mockWishlistCategoryService) CreateWishlistCategory(_ context.Context, name, icon string) (*models.WishlistCategory, error) {
	if m.createFn != nil {
		return m.createFn(name, icon)
	}
	return nil, nil
}

func (m *mockWishlistCategoryService) DeleteWishlistCategory(_ context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

// --- router setup ---

func setupWishlistCategoryRouter(handler *WishlistCategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/wishlist-categories", handler.GetWishlistCategories)
	r.POST("/wishlist-categories", handler.CreateWishlistCategory)
	r.DELETE("/wishlist-categories/:id", handler.DeleteWishlistCategory)
	return r
}

// --- tests ---

func TestWishlistCategoryHandler_List(t *testing.T) {
	r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(&mockWishlistCategoryService{}))

	rec := doRequest(r, "GET", "/wishlist-categories", "")

	assertStatus(t, rec, http.StatusOK)
	categories := parseJSON(t, rec)["categories"].([]interface{})
	if len(categories) != len(models.PresetWishlistCategories) {
		t.Fatalf("expected %d categories, got %d", len(models.PresetWishlistCategories), len(categories))
	}
	first := categories[0].(map[string]interface{})
	if first["name"] != "Electronics" || first["preset"] != true {
		t.Errorf("unexpected first category %v", first)
	}
	if _, ok := first["id"]; ok {
		t.Errorf("presets should carry no id, got %v", first["id"])
	}
}

func TestWishlistCategoryHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var gotName, gotIcon string
		svc := &mockWishlistCategoryService{
			createFn: func(name, icon string) (*models.WishlistCategory, error) {
				gotName, gotIcon = name, icon
				return &models.WishlistCategory{ID: testID, Name: name, Icon: models.DefaultCategoryIcon}, nil
			},
		}
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(svc))

		rec := doRequest(r, "POST", "/wishlist-categories", `{"name":"Tools"}`)

		assertStatus(t, rec, http.StatusCreated)
		if gotName != "Tools" || gotIcon != "" {
			t.Errorf("unexpected name/icon %q / %q", gotName, gotIcon)
		}
		category := parseJSON(t, rec)["category"].(map[string]interface{})
		if category["icon"] != models.DefaultCategoryIcon {
			t.Errorf("unexpected category %v", category)
		}
	})

	t.Run("returns 409 for duplicate", func(t *testing.T) {
		svc := &mockWishlistCategoryService{
			createFn: func(_, _ string) (*models.WishlistCategory, error) {
				return nil, apperrors.ErrWishlistCategoryExists
			},
		}
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(svc))

		rec := doRequest(r, "POST", "/wishlist-categories", `{"name":"travel"}`)

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "WISHLIST_CATEGORY_EXISTS")
	})

	t.Run("returns 400 without a name", func(t *testing.T) {
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(&mockWishlistCategoryService{}))

		rec := doRequest(r, "POST", "/wishlist-categories", `{"icon":"ri-hammer-line"}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestWishlistCategoryHandler_Delete(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var gotID string
		svc := &mockWishlistCategoryService{
			deleteFn: func(id string) error {
				gotID = id
				return nil
			},
		}
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/wishlist-categories/"+testID, "")

		assertStatus(t, rec, http.StatusOK)
		if gotID != testID {
			t.Errorf("expected id %s, got %s", testID, gotID)
		}
	})

	t.Run("returns 409 when in use", func(t *testing.T) {
		svc := &mockWishlistCategoryService{
			deleteFn: func(_ string) error {
				return apperrors.ErrWishlistCategoryInUse
			},
		}
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/wishlist-categories/"+testID, "")

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "WISHLIST_CATEGORY_IN_USE")
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockWishlistCategoryService{
			deleteFn: func(_ string) error {
				return apperrors.ErrWishlistCategoryNotFound
			},
		}
		r := setupWishlistCategoryRouter(NewWishlistCategoryHandler(svc))

		rec := doRequest(r, "DELETE", "/wishlist-categories/"+otherTestID, "")

		assertStatus(t, rec, http.StatusNotFound)
	})
}
