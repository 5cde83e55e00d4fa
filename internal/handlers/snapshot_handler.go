package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/pagination"
	"budgetcast/internal/services"
)

// SnapshotHandler handles balance snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// RecordSnapshotRequest represents the request payload for recording a snapshot.
type RecordSnapshotRequest struct {
	RecordedAt *time.Time `json:"recorded_at"`
}

// RecordSnapshot handles computing and recording a balance snapshot.
// @Summary     Record balance snapshot
// @Description Record the current cash balance and investment value (pipeline endpoint)
// @Tags        pipeline
// @Accept      json
// @Produce     json
// @Param       X-API-Key header   string                true  "Pipeline API key"
// @Param       request   body     RecordSnapshotRequest false "Snapshot time (default now)"
// @Success     201       {object} models.BalanceSnapshot "Snapshot recorded"
// @Failure     400       {object} ErrorResponse          "Invalid input"
// @Failure     401       {object} ErrorResponse          "Invalid API key"
// @Failure     503       {object} ErrorResponse          "Pipeline not configured"
// @Router      /pipeline/snapshots [post]
func (h *SnapshotHandler) RecordSnapshot(c *gin.Context) {
	var req RecordSnapshotRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	recordedAt := time.Now().UTC().Truncate(time.Second)
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), recordedAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetSnapshots handles listing balance snapshots.
// @Summary     Get balance snapshots
// @Description Get paginated balance snapshots for a time range, newest first
// @Tags        snapshots
// @Accept      json
// @Produce     json
// @Param       from      query string false "Start (RFC3339 or YYYY-MM-DD, default unbounded)"
// @Param       to        query string false "End (RFC3339 or YYYY-MM-DD, default now)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BalanceSnapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	var from time.Time
	if v := c.Query("from"); v != "" {
		parsed, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		from = parsed
	}

	to := time.Now().UTC()
	if v := c.Query("to"); v != "" {
		parsed, err := parseFlexibleTime(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
		to = parsed
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetSnapshots(c.Request.Context(), from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
