package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/services"
)

// PaydayHandler handles per-month payday adjustment requests.
type PaydayHandler struct {
	paydayService services.PaydayServicer
}

// NewPaydayHandler creates a new PaydayHandler.
func NewPaydayHandler(paydayService services.PaydayServicer) *PaydayHandler {
	return &PaydayHandler{paydayService: paydayService}
}

// SetPaydayRequest represents the request payload for setting a payday adjustment.
type SetPaydayRequest struct {
	RecurringItemID string `json:"recurring_item_id" binding:"required,uuid"`
	Year            int    `json:"year" binding:"required,min=1900,max=9999"`
	Month           int    `json:"month" binding:"required,min=1,max=12"`
	Day             int    `json:"day" binding:"required,min=1,max=31"`
}

// GetPaydayAdjustments handles listing payday adjustments.
// @Summary     Get payday adjustments
// @Description List payday adjustments, optionally for one year and month
// @Tags        paydays
// @Accept      json
// @Produce     json
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} map[string][]models.PaydayAdjustment "Payday adjustments"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paydays [get]
func (h *PaydayHandler) GetPaydayAdjustments(c *gin.Context) {
	year, err := parseIntQuery(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := parseIntQuery(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	adjustments, err := h.paydayService.GetPaydayAdjustments(c.Request.Context(), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payday_adjustments": adjustments})
}

// SetPaydayAdjustment handles creating or replacing a payday adjustment.
// @Summary     Set payday adjustment
// @Description Override the day of month a recurring item is paid on, for one month only
// @Tags        paydays
// @Accept      json
// @Produce     json
// @Param       request body SetPaydayRequest true "Payday adjustment"
// @Success     200 {object} models.PaydayAdjustment "Payday adjustment"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Recurring item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paydays [put]
func (h *PaydayHandler) SetPaydayAdjustment(c *gin.Context) {
	var req SetPaydayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	adj, err := h.paydayService.SetPaydayAdjustment(c.Request.Context(), req.RecurringItemID, req.Year, req.Month, req.Day)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payday_adjustment": adj})
}

// DeletePaydayAdjustment handles removing a payday adjustment.
// @Summary     Delete payday adjustment
// @Description Remove a payday adjustment
// @Tags        paydays
// @Accept      json
// @Produce     json
// @Param       id path string true "Payday adjustment ID"
// @Success     200 {object} MessageResponse "Payday adjustment deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Payday adjustment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paydays/{id} [delete]
func (h *PaydayHandler) DeletePaydayAdjustment(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paydayService.DeletePaydayAdjustment(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payday adjustment deleted successfully"})
}
