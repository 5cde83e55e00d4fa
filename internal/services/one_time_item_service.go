package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
)

// oneTimeItemService handles one-time income and expense records.
type oneTimeItemService struct {
	db *gorm.DB
}

// NewOneTimeItemService creates a new OneTimeItemServicer.
func NewOneTimeItemService(db *gorm.DB) OneTimeItemServicer {
	return &oneTimeItemService{db: db}
}

// CreateOneTimeItem validates and stores a new one-time item.
func (s *oneTimeItemService) CreateOneTimeItem(ctx context.Context, in OneTimeItemInput) (*models.OneTimeItem, error) {
	if !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}

	item := &models.OneTimeItem{
		Name:     in.Name,
		Kind:     in.Kind,
		Amount:   in.Amount,
		Date:     in.Date,
		Category: in.Category,
		Upcoming: in.Upcoming,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetOneTimeItems returns a paginated list of one-time items, newest first.
func (s *oneTimeItemService) GetOneTimeItems(
	ctx context.Context,
	page pagination.PageRequest,
	filter OneTimeItemFilter,
) (*pagination.PageResponse[models.OneTimeItem], error) {
	if filter.FromDate != nil && filter.ToDate != nil && filter.ToDate.Before(filter.FromDate.Time) {
		return nil, apperrors.ErrInvalidDateRange
	}

	base := s.db.WithContext(ctx).Model(&models.OneTimeItem{})
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	result, err := pagination.Find[models.OneTimeItem](base, page, "date DESC, name ASC")
	if err != nil {
		return nil, readError(err)
	}
	return result, nil
}

// GetOneTimeItemByID returns a one-time item by ID.
func (s *oneTimeItemService) GetOneTimeItemByID(ctx context.Context, id string) (*models.OneTimeItem, error) {
	var item models.OneTimeItem
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneTimeItemNotFound
		}
		return nil, readError(err)
	}
	return &item, nil
}

// UpdateOneTimeItem applies the non-nil fields of in.
func (s *oneTimeItemService) UpdateOneTimeItem(ctx context.Context, id string, in OneTimeItemUpdate) (*models.OneTimeItem, error) {
	item, err := s.GetOneTimeItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Amount != nil {
		updates["amount"] = *in.Amount
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Upcoming != nil {
		updates["upcoming"] = *in.Upcoming
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetOneTimeItemByID(ctx, id)
}

// DeleteOneTimeItem soft-deletes a one-time item.
func (s *oneTimeItemService) DeleteOneTimeItem(ctx context.Context, id string) error {
	item, err := s.GetOneTimeItemByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
