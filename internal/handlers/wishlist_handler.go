package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/services"
)

// WishlistHandler handles wishlist requests, including the affordability analysis.
type WishlistHandler struct {
	wishlistService   services.WishlistServicer
	projectionService services.ProjectionServicer
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService services.WishlistServicer, projectionService services.ProjectionServicer) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, projectionService: projectionService}
}

// CreateWishlistItemRequest represents the request payload for creating a wishlist item.
type CreateWishlistItemRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	Cost       decimal.Decimal `json:"cost" binding:"required,gt=0"`
	Category   string          `json:"category" binding:"max=100"`
	Priority   models.Priority `json:"priority" binding:"omitempty,priority"`
	TargetDate *models.Date    `json:"target_date"`
	URL        string          `json:"url" binding:"omitempty,url,max=2048"`
	Notes      string          `json:"notes" binding:"max=1000"`
}

// UpdateWishlistItemRequest represents the request payload for updating a wishlist item.
type UpdateWishlistItemRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Cost            *decimal.Decimal `json:"cost" binding:"omitempty,gt=0"`
	Category        *string          `json:"category" binding:"omitempty,max=100"`
	Priority        *models.Priority `json:"priority" binding:"omitempty,priority"`
	TargetDate      *models.Date     `json:"target_date"`
	ClearTargetDate bool             `json:"clear_target_date"`
	URL             *string          `json:"url" binding:"omitempty,max=2048"`
	Purchased       *bool            `json:"purchased"`
	Notes           *string          `json:"notes" binding:"omitempty,max=1000"`
}

// CreateWishlistItem handles the creation of a new wishlist item.
// @Summary     Create a wishlist item
// @Description Add something to the wishlist; priority defaults to medium and category to Other
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       request body CreateWishlistItemRequest true "Wishlist item details"
// @Success     201 {object} models.WishlistItem "Wishlist item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist [post]
func (h *WishlistHandler) CreateWishlistItem(c *gin.Context) {
	var req CreateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.wishlistService.CreateWishlistItem(c.Request.Context(), services.WishlistItemInput{
		Name:       req.Name,
		Cost:       req.Cost,
		Category:   req.Category,
		Priority:   req.Priority,
		TargetDate: req.TargetDate,
		URL:        req.URL,
		Notes:      req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wishlist_item": item})
}

// GetWishlistItems handles listing wishlist items.
// @Summary     Get wishlist items
// @Description Get wishlist items ordered by priority
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       purchased query bool false "Filter by purchased status"
// @Success     200 {object} map[string][]models.WishlistItem "Wishlist items"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist [get]
func (h *WishlistHandler) GetWishlistItems(c *gin.Context) {
	purchased, err := parseBoolQuery(c, "purchased")
	if err != nil {
		respondWithError(c, err)
		return
	}

	items, err := h.wishlistService.GetWishlistItems(c.Request.Context(), purchased)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist_items": items})
}

// GetWishlistItem handles retrieving a specific wishlist item.
// @Summary     Get wishlist item by ID
// @Description Get a specific wishlist item by ID
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Wishlist item ID"
// @Success     200 {object} models.WishlistItem "Wishlist item details"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Wishlist item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id} [get]
func (h *WishlistHandler) GetWishlistItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.wishlistService.GetWishlistItemByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist_item": item})
}

// UpdateWishlistItem handles updating an existing wishlist item.
// @Summary     Update wishlist item
// @Description Update an existing wishlist item or mark it purchased
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Wishlist item ID"
// @Param       request body UpdateWishlistItemRequest true "Updated wishlist item details"
// @Success     200 {object} models.WishlistItem "Updated wishlist item"
// @Failure     400 {object} ErrorResponse "Invalid input or ID"
// @Failure     404 {object} ErrorResponse "Wishlist item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id} [put]
func (h *WishlistHandler) UpdateWishlistItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.wishlistService.UpdateWishlistItem(c.Request.Context(), id, services.WishlistItemUpdate{
		Name:            req.Name,
		Cost:            req.Cost,
		Category:        req.Category,
		Priority:        req.Priority,
		TargetDate:      req.TargetDate,
		ClearTargetDate: req.ClearTargetDate,
		URL:             req.URL,
		Purchased:       req.Purchased,
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist_item": item})
}

// TogglePurchased handles flipping the purchased flag of a wishlist item.
// @Summary     Toggle purchased
// @Description Mark an item purchased (stamping today as its purchase date) or unmark it
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Wishlist item ID"
// @Success     200 {object} models.WishlistItem "Updated wishlist item"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Wishlist item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id}/toggle-purchased [post]
func (h *WishlistHandler) TogglePurchased(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.wishlistService.TogglePurchased(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist_item": item})
}

// DeleteWishlistItem handles deleting a wishlist item.
// @Summary     Delete wishlist item
// @Description Delete a wishlist item
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Wishlist item ID"
// @Success     200 {object} MessageResponse "Wishlist item deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Wishlist item not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/{id} [delete]
func (h *WishlistHandler) DeleteWishlistItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.wishlistService.DeleteWishlistItem(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist item deleted successfully"})
}

// AnalyzeWishlist handles the affordability analysis of the wishlist.
// @Summary     Analyze wishlist affordability
// @Description For every unpurchased item: whether it is affordable now and, if not, when it will be
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Success     200 {object} projection.Analysis "Affordability analysis"
// @Failure     422 {object} ErrorResponse "A stored record could not be read"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist/analysis [get]
func (h *WishlistHandler) AnalyzeWishlist(c *gin.Context) {
	analysis, err := h.projectionService.AnalyzeWishlist(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}
