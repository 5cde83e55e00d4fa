package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupSnapshotPipeline mounts the middleware the way the server guards the
// snapshot pipeline and records whether the guarded handler ran.
func setupSnapshotPipeline(apiKey string, reached *bool) *gin.Engine {
	r := gin.New()
	pipeline := r.Group("/api/v1/pipeline")
	pipeline.Use(PipelineAuthMiddleware(apiKey))
	pipeline.POST("/snapshots", func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusCreated, gin.H{"snapshot": gin.H{}})
	})
	r.GET("/api/v1/snapshots", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []string{}})
	})
	return r
}

func TestPipelineAuthMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		headers       map[string]string
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:          "matching key records snapshot",
			configuredKey: "snapshot-key",
			headers:       map[string]string{APIKeyHeader: "snapshot-key"},
			wantStatus:    http.StatusCreated,
		},
		{
			name:          "header name is case insensitive",
			configuredKey: "snapshot-key",
			headers:       map[string]string{"x-api-key": "snapshot-key"},
			wantStatus:    http.StatusCreated,
		},
		{
			name:          "wrong key",
			configuredKey: "snapshot-key",
			headers:       map[string]string{APIKeyHeader: "wrong-key"},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "missing key",
			configuredKey: "snapshot-key",
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "key value is case sensitive",
			configuredKey: "snapshot-key",
			headers:       map[string]string{APIKeyHeader: "SNAPSHOT-KEY"},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "prefix of key",
			configuredKey: "snapshot-key",
			headers:       map[string]string{APIKeyHeader: "snapshot"},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "bearer token is not accepted",
			configuredKey: "snapshot-key",
			headers:       map[string]string{"Authorization": "Bearer snapshot-key"},
			wantStatus:    http.StatusUnauthorized,
			wantErrorCode: "INVALID_API_KEY",
		},
		{
			name:          "pipeline disabled",
			configuredKey: "",
			headers:       map[string]string{APIKeyHeader: "any-key"},
			wantStatus:    http.StatusServiceUnavailable,
			wantErrorCode: "PIPELINE_NOT_CONFIGURED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			router := setupSnapshotPipeline(tt.configuredKey, &reached)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/snapshots", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if wantReached := tt.wantErrorCode == ""; reached != wantReached {
				t.Errorf("handler reached = %v, want %v", reached, wantReached)
			}
			if tt.wantErrorCode != "" {
				assertErrorCode(t, rec, tt.wantErrorCode)
			}
		})
	}
}

func TestPipelineAuthMiddleware_ReadRoutesStayOpen(t *testing.T) {
	var reached bool
	router := setupSnapshotPipeline("snapshot-key", &reached)

	rec := serve(router, "/api/v1/snapshots")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
