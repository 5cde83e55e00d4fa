package services

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
)

// wishlistService handles wishlist items.
type wishlistService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewWishlistService creates a new WishlistServicer.
func NewWishlistService(db *gorm.DB) WishlistServicer {
	return &wishlistService{db: db, now: time.Now}
}

// CreateWishlistItem validates and stores a new wishlist item.
func (s *wishlistService) CreateWishlistItem(ctx context.Context, in WishlistItemInput) (*models.WishlistItem, error) {
	if !in.Cost.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Cost must be positive")
	}
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultWishlistCategory
	}

	item := &models.WishlistItem{
		Name:       in.Name,
		Cost:       in.Cost,
		Category:   category,
		Priority:   priority,
		TargetDate: in.TargetDate,
		URL:        in.URL,
		Notes:      in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetWishlistItems returns the wishlist ordered by priority, then by age.
func (s *wishlistService) GetWishlistItems(ctx context.Context, purchased *bool) ([]models.WishlistItem, error) {
	base := s.db.WithContext(ctx).Model(&models.WishlistItem{})
	if purchased != nil {
		base = base.Where("purchased = ?", *purchased)
	}

	var items []models.WishlistItem
	if err := base.Order("created_at ASC, id ASC").Find(&items).Error; err != nil {
		return nil, readError(err)
	}
	slices.SortStableFunc(items, func(a, b models.WishlistItem) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	})
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}

// GetWishlistItemByID returns a wishlist item by ID.
func (s *wishlistService) GetWishlistItemByID(ctx context.Context, id string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWishlistItemNotFound
		}
		return nil, readError(err)
	}
	return &item, nil
}

// UpdateWishlistItem applies the non-nil fields of in.
func (s *wishlistService) UpdateWishlistItem(ctx context.Context, id string, in WishlistItemUpdate) (*models.WishlistItem, error) {
	item, err := s.GetWishlistItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Cost != nil && !in.Cost.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Cost must be positive")
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Cost != nil {
		updates["cost"] = *in.Cost
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			category = models.DefaultWishlistCategory
		}
		updates["category"] = category
	}
	if in.Priority != nil {
		updates["priority"] = *in.Priority
	}
	if in.TargetDate != nil {
		updates["target_date"] = *in.TargetDate
	}
	if in.ClearTargetDate {
		updates["target_date"] = nil
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}
	if in.Purchased != nil && *in.Purchased != item.Purchased {
		s.purchaseUpdates(updates, *in.Purchased)
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetWishlistItemByID(ctx, id)
}

// TogglePurchased flips the purchased flag of an item.
func (s *wishlistService) TogglePurchased(ctx context.Context, id string) (*models.WishlistItem, error) {
	item, err := s.GetWishlistItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	s.purchaseUpdates(updates, !item.Purchased)
	if err := s.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetWishlistItemByID(ctx, id)
}

// purchaseUpdates sets the purchased flag and keeps the purchase date in step with it.
func (s *wishlistService) purchaseUpdates(updates map[string]interface{}, purchased bool) {
	updates["purchased"] = purchased
	if purchased {
		updates["purchased_date"] = models.DateOf(s.now())
	} else {
		updates["purchased_date"] = nil
	}
}

// DeleteWishlistItem soft-deletes a wishlist item.
func (s *wishlistService) DeleteWishlistItem(ctx context.Context, id string) error {
	item, err := s.GetWishlistItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
