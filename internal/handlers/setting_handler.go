package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/services"
)

// SettingHandler handles user preference requests.
type SettingHandler struct {
	settingService services.SettingServicer
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService services.SettingServicer) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// UpdateSettingsRequest represents the request payload for updating settings.
type UpdateSettingsRequest struct {
	Currency         *string `json:"currency" binding:"omitempty,iso4217"`
	ProjectionMonths *int    `json:"projection_months" binding:"omitempty,min=1,max=120"`
	DateFormat       *string `json:"date_format" binding:"omitempty,date_format"`
}

// GetSettings handles reading the user preferences.
// @Summary     Get settings
// @Description Get the display currency, default projection horizon and display date format
// @Tags        settings
// @Accept      json
// @Produce     json
// @Success     200 {object} services.Settings "Settings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingService.GetSettings(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings handles changing the user preferences.
// @Summary     Update settings
// @Description Change the display currency (ISO 4217), the default projection horizon or the display date format (YYYY-MM-DD, DD/MM/YYYY, MM/DD/YYYY, DD.MM.YYYY)
// @Tags        settings
// @Accept      json
// @Produce     json
// @Param       request body UpdateSettingsRequest true "Settings to change"
// @Success     200 {object} services.Settings "Updated settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingService.UpdateSettings(c.Request.Context(), services.SettingsUpdate{
		Currency:         req.Currency,
		ProjectionMonths: req.ProjectionMonths,
		DateFormat:       req.DateFormat,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
