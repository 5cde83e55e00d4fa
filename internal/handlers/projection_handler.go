package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/projection"
	"budgetcast/internal/services"
)

// ProjectionHandler handles cash flow projection requests.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// GetForward handles the forward projection.
// @Summary     Project future months
// @Description Month-by-month income, expenses and running balance, starting with the current month
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       months query int false "Months to project (default from settings, max 120)"
// @Success     200 {object} map[string][]projection.MonthProjection "Projected months"
// @Failure     400 {object} ErrorResponse "Invalid horizon"
// @Failure     422 {object} ErrorResponse "A stored record could not be read"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections [get]
func (h *ProjectionHandler) GetForward(c *gin.Context) {
	months, err := parseIntQuery(c, "months")
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.projectionService.Forward(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projections": series})
}

// GetHistory handles the historical projection.
// @Summary     Project past months
// @Description Month-by-month figures from the earliest record through the current month
// @Tags        projections
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]projection.MonthProjection "Projected months"
// @Failure     422 {object} ErrorResponse "A stored record could not be read"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/history [get]
func (h *ProjectionHandler) GetHistory(c *gin.Context) {
	series, err := h.projectionService.History(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projections": series})
}

// GetMonthDetails handles the per-item breakdown of one month.
// @Summary     Month details
// @Description Occurrences and totals of each recurring item, one-time items and investment return of one month
// @Tags        projections
// @Accept      json
// @Produce     json
// @Param       month query string false "Month as YYYY-MM (default current month)"
// @Success     200 {object} projection.MonthDetail "Month breakdown"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     422 {object} ErrorResponse "A stored record could not be read"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/details [get]
func (h *ProjectionHandler) GetMonthDetails(c *gin.Context) {
	month := time.Now().UTC()
	if v := c.Query("month"); v != "" {
		parsed, err := projection.ParseMonthKey(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be formatted as YYYY-MM"))
			return
		}
		month = parsed
	}

	detail, err := h.projectionService.MonthDetails(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
