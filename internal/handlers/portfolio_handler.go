package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/pagination"
	"budgetcast/internal/projection"
	"budgetcast/internal/services"
)

// PortfolioHandler handles investment portfolio requests.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// CreatePortfolioRequest represents the request payload for creating a portfolio.
type CreatePortfolioRequest struct {
	Name                string          `json:"name" binding:"required,min=1,max=200"`
	CurrentValue        decimal.Decimal `json:"current_value" binding:"gte=0"`
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" binding:"gte=0"`
	MeanReturnPercent   decimal.Decimal `json:"mean_return_percent" binding:"gte=-100,lte=100"`
	Active              *bool           `json:"active"`
}

// UpdatePortfolioRequest represents the request payload for updating a portfolio.
type UpdatePortfolioRequest struct {
	Name                *string          `json:"name" binding:"omitempty,min=1,max=200"`
	CurrentValue        *decimal.Decimal `json:"current_value" binding:"omitempty,gte=0"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution" binding:"omitempty,gte=0"`
	MeanReturnPercent   *decimal.Decimal `json:"mean_return_percent" binding:"omitempty,gte=-100,lte=100"`
	Active              *bool            `json:"active"`
}

// CreatePortfolio handles the creation of a new portfolio.
// @Summary     Create a portfolio
// @Description Create an investment portfolio with a monthly contribution and mean annual return
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       request body CreatePortfolioRequest true "Portfolio details"
// @Success     201 {object} models.InvestmentPortfolio "Portfolio created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	portfolio, err := h.portfolioService.CreatePortfolio(c.Request.Context(), services.PortfolioInput{
		Name:                req.Name,
		CurrentValue:        req.CurrentValue,
		MonthlyContribution: req.MonthlyContribution,
		MeanReturnPercent:   req.MeanReturnPercent,
		Active:              active,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"portfolio": portfolio})
}

// GetPortfolios handles listing portfolios.
// @Summary     Get portfolios
// @Description Get a paginated list of investment portfolios
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       active    query bool false "Filter by active status"
// @Param       page      query int  false "Page number (default 1)"
// @Param       page_size query int  false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.InvestmentPortfolio] "Paginated portfolios"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios [get]
func (h *PortfolioHandler) GetPortfolios(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	active, err := parseBoolQuery(c, "active")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.portfolioService.GetPortfolios(c.Request.Context(), page, active)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPortfolio handles retrieving a specific portfolio.
// @Summary     Get portfolio by ID
// @Description Get a specific investment portfolio by ID
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} models.InvestmentPortfolio "Portfolio details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.GetPortfolioByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

// UpdatePortfolio handles updating an existing portfolio.
// @Summary     Update portfolio
// @Description Update an existing investment portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Portfolio ID"
// @Param       request body UpdatePortfolioRequest true "Updated portfolio details"
// @Success     200 {object} models.InvestmentPortfolio "Updated portfolio"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [put]
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(c.Request.Context(), id, services.PortfolioUpdate{
		Name:                req.Name,
		CurrentValue:        req.CurrentValue,
		MonthlyContribution: req.MonthlyContribution,
		MeanReturnPercent:   req.MeanReturnPercent,
		Active:              req.Active,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

// DeletePortfolio handles deleting a portfolio.
// @Summary     Delete portfolio
// @Description Delete an investment portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} MessageResponse "Portfolio deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.portfolioService.DeletePortfolio(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deleted successfully"})
}

// ProjectPortfolio handles projecting the value of one portfolio.
// @Summary     Project portfolio value
// @Description Month-end values of one portfolio, starting with the current month
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id     path  string true  "Portfolio ID"
// @Param       months query int    false "Months to project (default 12, max 120)"
// @Success     200 {object} map[string][]services.PortfolioProjectionPoint "Projected values"
// @Failure     400 {object} ErrorResponse "Invalid ID or horizon"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/projection [get]
func (h *PortfolioHandler) ProjectPortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	months := projection.DefaultMonths
	n, err := parseIntQuery(c, "months")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if n != nil {
		months = *n
	}

	points, err := h.portfolioService.ProjectPortfolio(c.Request.Context(), id, months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": points})
}

// ProjectPortfolios handles projecting the combined value of the active portfolios.
// @Summary     Project investments
// @Description Month-end combined value of every active portfolio, with the monthly contribution they receive together
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       months query int false "Months to project (default 12, max 120)"
// @Success     200 {object} map[string][]services.InvestmentProjectionPoint "Projected values"
// @Failure     400 {object} ErrorResponse "Invalid horizon"
// @Failure     422 {object} ErrorResponse "A stored record could not be read"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/projection [get]
func (h *PortfolioHandler) ProjectPortfolios(c *gin.Context) {
	months := projection.DefaultMonths
	n, err := parseIntQuery(c, "months")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if n != nil {
		months = *n
	}

	points, err := h.portfolioService.ProjectPortfolios(c.Request.Context(), months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": points})
}

// RecalculatePortfolio handles revaluing a portfolio from its holdings.
// @Summary     Recalculate portfolio value
// @Description Set the current value to the sum of shares times current price over the portfolio's holdings
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Param       id path string true "Portfolio ID"
// @Success     200 {object} services.PortfolioValuation "Recalculated valuation"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolios/{id}/recalculate [post]
func (h *PortfolioHandler) RecalculatePortfolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	valuation, err := h.portfolioService.RecalculatePortfolio(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, valuation)
}
