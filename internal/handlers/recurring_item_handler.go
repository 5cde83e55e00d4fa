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

// RecurringItemHandler handles recurring income and expense requests.
type RecurringItemHandler struct {
	recurringService services.RecurringItemServicer
}

// NewRecurringItemHandler creates a new RecurringItemHandler.
func NewRecurringItemHandler(recurringService services.RecurringItemServicer) *RecurringItemHandler {
	return &RecurringItemHandler{recurringService: recurringService}
}

// CreateRecurringItemRequest represents the request payload for creating a recurring item.
type CreateRecurringItemRequest struct {
	Name      string           `json:"name" binding:"required,min=1,max=200"`
	Kind      models.EntryKind `json:"kind" binding:"required,entry_kind"`
	Amount    decimal.Decimal  `json:"amount" binding:"required,gt=0"`
	Frequency models.Frequency `json:"frequency" binding:"required,frequency"`
	StartDate models.Date      `json:"start_date" binding:"required"`
	EndDate   *models.Date     `json:"end_date"`
	Category  string           `json:"category" binding:"max=100"`
	Payday    int              `json:"payday" binding:"omitempty,min=1,max=31"`
	Active    *bool            `json:"active"`
	Upcoming  bool             `json:"upcoming"`
}

// UpdateRecurringItemRequest represents the request payload for updating a recurring item.
type UpdateRecurringItemRequest struct {
	Name         *string           `json:"name" binding:"omitempty,min=1,max=200"`
	Amount       *decimal.Decimal  `json:"amount" binding:"omitempty,gt=0"`
	Frequency    *models.Frequency `json:"frequency" binding:"omitempty,frequency"`
	StartDate    *models.Date      `json:"start_date"`
	EndDate      *models.Date      `json:"end_date"`
	ClearEndDate bool              `json:"clear_end_date"`
	Category     *string           `json:"category" binding:"omitempty,max=100"`
	Payday       *int              `json:"payday" binding:"omitempty,min=0,max=31"`
	Active       *bool             `json:"active"`
	Upcoming     *bool             `json:"upcoming"`
}

// CreateRecurringItem handles the creation of a new recurring item.
// @Summary     Create a recurring item
// @Description Create a recurring income or expense such as a salary or rent
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       request body CreateRecurringItemRequest true "Recurring item details"
// @Success     201 {object} models.RecurringItem "Recurring item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [post]
func (h *RecurringItemHandler) CreateRecurringItem(c *gin.Context) {
	var req CreateRecurringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item, err := h.recurringService.CreateRecurringItem(c.Request.Context(), services.RecurringItemInput{
		Name:      req.Name,
		Kind:      req.Kind,
		Amount:    req.Amount,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Category:  req.Category,
		Payday:    req.Payday,
		Active:    active,
		Upcoming:  req.Upcoming,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recurring_item": item})
}

// GetRecurringItems handles listing recurring items.
// @Summary     Get recurring items
// @Description Get a paginated list of recurring items
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       kind      query string false "Filter by kind (income/expense)"
// @Param       active    query bool   false "Filter by active status"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.RecurringItem] "Paginated recurring items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring [get]
func (h *RecurringItemHandler) GetRecurringItems(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	kind, err := parseKindQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	active, err := parseBoolQuery(c, "active")
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recurringService.GetRecurringItems(c.Request.Context(), page, services.RecurringItemFilter{
		Kind:   kind,
		Active: active,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecurringItem handles retrieving a specific recurring item.
// @Summary     Get recurring item by ID
// @Description Get a specific recurring item by ID
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id path string true "Recurring item ID"
// @Success     200 {object} models.RecurringItem "Recurring item details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Recurring item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [get]
func (h *RecurringItemHandler) GetRecurringItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.recurringService.GetRecurringItemByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_item": item})
}

// UpdateRecurringItem handles updating an existing recurring item.
// @Summary     Update recurring item
// @Description Update an existing recurring item; set clear_end_date to make it ongoing again
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id      path string                     true "Recurring item ID"
// @Param       request body UpdateRecurringItemRequest true "Updated recurring item details"
// @Success     200 {object} models.RecurringItem "Updated recurring item"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "Recurring item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [put]
func (h *RecurringItemHandler) UpdateRecurringItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecurringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.recurringService.UpdateRecurringItem(c.Request.Context(), id, services.RecurringItemUpdate{
		Name:         req.Name,
		Amount:       req.Amount,
		Frequency:    req.Frequency,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClearEndDate: req.ClearEndDate,
		Category:     req.Category,
		Payday:       req.Payday,
		Active:       req.Active,
		Upcoming:     req.Upcoming,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recurring_item": item})
}

// DeleteRecurringItem handles deleting a recurring item.
// @Summary     Delete recurring item
// @Description Delete a recurring item and its payday adjustments
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id path string true "Recurring item ID"
// @Success     200 {object} MessageResponse "Recurring item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Recurring item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recurring/{id} [delete]
func (h *RecurringItemHandler) DeleteRecurringItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeleteRecurringItem(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring item deleted successfully"})
}
