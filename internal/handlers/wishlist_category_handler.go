package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/services"
)

// WishlistCategoryHandler handles wishlist category requests.
type WishlistCategoryHandler struct {
	categoryService services.WishlistCategoryServicer
}

// NewWishlistCategoryHandler creates a new WishlistCategoryHandler.
func NewWishlistCategoryHandler(categoryService services.WishlistCategoryServicer) *WishlistCategoryHandler {
	return &WishlistCategoryHandler{categoryService: categoryService}
}

// CreateWishlistCategoryRequest represents the request payload for creating a category.
type CreateWishlistCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Icon string `json:"icon" binding:"max=64"`
}

// GetWishlistCategories handles listing the wishlist categories.
// @Summary     Get wishlist categories
// @Description The preset categories followed by the custom ones
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]models.WishlistCategory "Categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist-categories [get]
func (h *WishlistCategoryHandler) GetWishlistCategories(c *gin.Context) {
	categories, err := h.categoryService.GetWishlistCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateWishlistCategory handles adding a custom category.
// @Summary     Create a wishlist category
// @Description Add a custom category; names are unique regardless of case
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       request body CreateWishlistCategoryRequest true "Category details"
// @Success     201 {object} models.WishlistCategory "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Category already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist-categories [post]
func (h *WishlistCategoryHandler) CreateWishlistCategory(c *gin.Context) {
	var req CreateWishlistCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateWishlistCategory(c.Request.Context(), req.Name, req.Icon)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteWishlistCategory handles removing a custom category.
// @Summary     Delete wishlist category
// @Description Delete a custom category that no wishlist item uses
// @Tags        wishlist
// @Accept      json
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category is in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /wishlist-categories/{id} [delete]
func (h *WishlistCategoryHandler) DeleteWishlistCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteWishlistCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
