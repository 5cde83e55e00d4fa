package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, code string) {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatal("expected error object in response")
	}
	if got, _ := errObj["code"].(string); got != code {
		t.Errorf("error code = %q, want %q", got, code)
	}
}

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperrors.ErrWishlistItemNotFound) })
	r.GET("/date", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("load incomes: %w", models.ErrMalformedDate))
	})
	r.GET("/plain", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("after write"))
	})
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"app_error", "/app", http.StatusNotFound, "WISHLIST_ITEM_NOT_FOUND"},
		{"malformed_date", "/date", http.StatusUnprocessableEntity, "DATA_INTEGRITY"},
		{"unexpected_error", "/plain", http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"response_already_written", "/written", http.StatusTeapot, ""},
		{"no_error", "/ok", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(r, tt.path)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				assertErrorCode(t, rec, tt.wantCode)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(_ *gin.Context) { panic("nil map") })

	rec := serve(r, "/panic")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	assertErrorCode(t, rec, "INTERNAL_ERROR")
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates_request_id", func(t *testing.T) {
		rec := serve(r, "/id")
		id := rec.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatal("expected X-Request-ID header")
		}
		if rec.Body.String() != id {
			t.Errorf("context request ID = %q, header = %q", rec.Body.String(), id)
		}
	})

	t.Run("keeps_incoming_request_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", http.NoBody)
		req.Header.Set("X-Request-ID", "upstream-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get("X-Request-ID"); got != "upstream-123" {
			t.Errorf("X-Request-ID = %q, want upstream-123", got)
		}
	})
}
