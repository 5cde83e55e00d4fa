package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/services"
)

// HoldingHandler handles requests for the holdings inside portfolios.
type HoldingHandler struct {
	holdingService services.HoldingServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService}
}

// CreateHoldingRequest represents the request payload for creating a holding.
type CreateHoldingRequest struct {
	PortfolioID  string           `json:"portfolio_id" binding:"required,uuid"`
	Ticker       string           `json:"ticker" binding:"required,min=1,max=20"`
	Name         string           `json:"name" binding:"max=200"`
	Shares       decimal.Decimal  `json:"shares" binding:"required,gt=0"`
	AvgPrice     decimal.Decimal  `json:"avg_price" binding:"gte=0"`
	CurrentPrice *decimal.Decimal `json:"current_price" binding:"omitempty,gte=0"`
	PurchaseDate models.Date      `json:"purchase_date" binding:"required"`
}

// UpdateHoldingRequest represents the request payload for updating a holding.
type UpdateHoldingRequest struct {
	Ticker       *string          `json:"ticker" binding:"omitempty,min=1,max=20"`
	Name         *string          `json:"name" binding:"omitempty,max=200"`
	Shares       *decimal.Decimal `json:"shares" binding:"omitempty,gt=0"`
	AvgPrice     *decimal.Decimal `json:"avg_price" binding:"omitempty,gte=0"`
	CurrentPrice *decimal.Decimal `json:"current_price" binding:"omitempty,gte=0"`
	PurchaseDate *models.Date     `json:"purchase_date"`
}

// CreateHolding handles adding a holding to a portfolio.
// @Summary     Create a holding
// @Description Add a manually tracked stock holding to a portfolio; current price defaults to the average price
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       request body CreateHoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.CreateHolding(c.Request.Context(), services.HoldingInput{
		PortfolioID:  req.PortfolioID,
		Ticker:       req.Ticker,
		Name:         req.Name,
		Shares:       req.Shares,
		AvgPrice:     req.AvgPrice,
		CurrentPrice: req.CurrentPrice,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// GetHoldings handles listing holdings.
// @Summary     Get holdings
// @Description Get a paginated list of holdings ordered by ticker
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       portfolio_id query string false "Only holdings of this portfolio"
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Holding] "Paginated holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *HoldingHandler) GetHoldings(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	portfolioID, err := parseUUIDQuery(c, "portfolio_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.holdingService.GetHoldings(c.Request.Context(), page, portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHolding handles retrieving a specific holding.
// @Summary     Get holding by ID
// @Description Get a specific holding by ID
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id path string true "Holding ID"
// @Success     200 {object} models.Holding "Holding details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHoldingByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// UpdateHolding handles updating an existing holding.
// @Summary     Update holding
// @Description Update a holding, typically its current price
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Updated holding details"
// @Success     200 {object} models.Holding "Updated holding"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.UpdateHolding(c.Request.Context(), id, services.HoldingUpdate{
		Ticker:       req.Ticker,
		Name:         req.Name,
		Shares:       req.Shares,
		AvgPrice:     req.AvgPrice,
		CurrentPrice: req.CurrentPrice,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// DeleteHolding handles deleting a holding.
// @Summary     Delete holding
// @Description Delete a holding
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       id path string true "Holding ID"
// @Success     200 {object} MessageResponse "Holding deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holding deleted successfully"})
}
