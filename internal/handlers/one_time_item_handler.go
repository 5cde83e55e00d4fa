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

// OneTimeItemHandler handles one-time income and expense requests.
type OneTimeItemHandler struct {
	oneTimeService services.OneTimeItemServicer
}

// NewOneTimeItemHandler creates a new OneTimeItemHandler.
func NewOneTimeItemHandler(oneTimeService services.OneTimeItemServicer) *OneTimeItemHandler {
	return &OneTimeItemHandler{oneTimeService: oneTimeService}
}

// CreateOneTimeItemRequest represents the request payload for creating a one-time item.
type CreateOneTimeItemRequest struct {
	Name     string           `json:"name" binding:"required,min=1,max=200"`
	Kind     models.EntryKind `json:"kind" binding:"required,entry_kind"`
	Amount   decimal.Decimal  `json:"amount" binding:"required,gt=0"`
	Date     models.Date      `json:"date" binding:"required"`
	Category string           `json:"category" binding:"max=100"`
	Upcoming bool             `json:"upcoming"`
}

// UpdateOneTimeItemRequest represents the request payload for updating a one-time item.
type UpdateOneTimeItemRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Amount   *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	Date     *models.Date     `json:"date"`
	Category *string          `json:"category" binding:"omitempty,max=100"`
	Upcoming *bool            `json:"upcoming"`
}

// CreateOneTimeItem handles the creation of a new one-time item.
// @Summary     Create a one-time item
// @Description Create a single dated income or expense
// @Tags        one-time
// @Accept      json
// @Produce     json
// @Param       request body CreateOneTimeItemRequest true "One-time item details"
// @Success     201 {object} models.OneTimeItem "One-time item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /one-time [post]
func (h *OneTimeItemHandler) CreateOneTimeItem(c *gin.Context) {
	var req CreateOneTimeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.oneTimeService.CreateOneTimeItem(c.Request.Context(), services.OneTimeItemInput{
		Name:     req.Name,
		Kind:     req.Kind,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
		Upcoming: req.Upcoming,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"one_time_item": item})
}

// GetOneTimeItems handles listing one-time items.
// @Summary     Get one-time items
// @Description Get a paginated list of one-time items, newest first
// @Tags        one-time
// @Accept      json
// @Produce     json
// @Param       kind      query string false "Filter by kind (income/expense)"
// @Param       from      query string false "Earliest date (YYYY-MM-DD)"
// @Param       to        query string false "Latest date (YYYY-MM-DD)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.OneTimeItem] "Paginated one-time items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /one-time [get]
func (h *OneTimeItemHandler) GetOneTimeItems(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.OneTimeItemFilter
	var err error
	if filter.Kind, err = parseKindQuery(c); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.FromDate, err = parseDateQuery(c, "from"); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.ToDate, err = parseDateQuery(c, "to"); err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.oneTimeService.GetOneTimeItems(c.Request.Context(), page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetOneTimeItem handles retrieving a specific one-time item.
// @Summary     Get one-time item by ID
// @Description Get a specific one-time item by ID
// @Tags        one-time
// @Accept      json
// @Produce     json
// @Param       id path string true "One-time item ID"
// @Success     200 {object} models.OneTimeItem "One-time item details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "One-time item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /one-time/{id} [get]
func (h *OneTimeItemHandler) GetOneTimeItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.oneTimeService.GetOneTimeItemByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"one_time_item": item})
}

// UpdateOneTimeItem handles updating an existing one-time item.
// @Summary     Update one-time item
// @Description Update an existing one-time item
// @Tags        one-time
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "One-time item ID"
// @Param       request body UpdateOneTimeItemRequest true "Updated one-time item details"
// @Success     200 {object} models.OneTimeItem "Updated one-time item"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "One-time item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /one-time/{id} [put]
func (h *OneTimeItemHandler) UpdateOneTimeItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateOneTimeItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.oneTimeService.UpdateOneTimeItem(c.Request.Context(), id, services.OneTimeItemUpdate{
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
		Upcoming: req.Upcoming,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"one_time_item": item})
}

// DeleteOneTimeItem handles deleting a one-time item.
// @Summary     Delete one-time item
// @Description Delete a one-time item
// @Tags        one-time
// @Accept      json
// @Produce     json
// @Param       id path string true "One-time item ID"
// @Success     200 {object} MessageResponse "One-time item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "One-time item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /one-time/{id} [delete]
func (h *OneTimeItemHandler) DeleteOneTimeItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.oneTimeService.DeleteOneTimeItem(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "One-time item deleted successfully"})
}
