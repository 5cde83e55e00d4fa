package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
)

// wishlistCategoryService handles the custom wishlist categories.
type wishlistCategoryService struct {
	db *gorm.DB
}

// NewWishlistCategoryService creates a new WishlistCategoryServicer.
func NewWishlistCategoryService(db *gorm.DB) WishlistCategoryServicer {
	return &wishlistCategoryService{db: db}
}

// GetWishlistCategories returns the presets followed by the custom
// categories in name order.
func (s *wishlistCategoryService) GetWishlistCategories(ctx context.Context) ([]models.WishlistCategory, error) {
	var custom []models.WishlistCategory
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&custom).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	categories := make([]models.WishlistCategory, 0, len(models.PresetWishlistCategories)+len(custom))
	categories = append(categories, models.PresetWishlistCategories...)
	return append(categories, custom...), nil
}

// CreateWishlistCategory adds a custom category. Names are unique without
// regard to case, presets included.
func (s *wishlistCategoryService) CreateWishlistCategory(ctx context.Context, name, icon string) (*models.WishlistCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Category name is required")
	}
	if icon = strings.TrimSpace(icon); icon == "" {
		icon = models.DefaultCategoryIcon
	}

	for _, preset := range models.PresetWishlistCategories {
		if strings.EqualFold(preset.Name, name) {
			return nil, apperrors.ErrWishlistCategoryExists
		}
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.WishlistCategory{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&count).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrWishlistCategoryExists
	}

	category := &models.WishlistCategory{Name: name, Icon: icon}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// DeleteWishlistCategory removes a custom category that no wishlist item uses.
func (s *wishlistCategoryService) DeleteWishlistCategory(ctx context.Context, id string) error {
	var category models.WishlistCategory
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWishlistCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var inUse int64
	err := s.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("category = ?", category.Name).
		Count(&inUse).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if inUse > 0 {
		return apperrors.ErrWishlistCategoryInUse
	}

	if err := s.db.WithContext(ctx).Delete(&category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
