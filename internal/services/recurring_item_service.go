package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
)

// recurringItemService handles recurring income and expense records.
type recurringItemService struct {
	db *gorm.DB
}

// NewRecurringItemService creates a new RecurringItemServicer.
func NewRecurringItemService(db *gorm.DB) RecurringItemServicer {
	return &recurringItemService{db: db}
}

// CreateRecurringItem validates and stores a new recurring item.
func (s *recurringItemService) CreateRecurringItem(ctx context.Context, in RecurringItemInput) (*models.RecurringItem, error) {
	if !in.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be positive")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate.Time) {
		return nil, apperrors.ErrInvalidDateRange
	}

	item := &models.RecurringItem{
		Name:      in.Name,
		Kind:      in.Kind,
		Amount:    in.Amount,
		Frequency: in.Frequency,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Category:  in.Category,
		Payday:    in.Payday,
		Active:    in.Active,
		Upcoming:  in.Upcoming,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return item, nil
}

// GetRecurringItems returns a paginated list of recurring items with optional filters.
func (s *recurringItemService) GetRecurringItems(
	ctx context.Context,
	page pagination.PageRequest,
	filter RecurringItemFilter,
) (*pagination.PageResponse[models.RecurringItem], error) {
	base := s.db.WithContext(ctx).Model(&models.RecurringItem{})
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if filter.Active != nil {
		base = base.Where("active = ?", *filter.Active)
	}

	result, err := pagination.Find[models.RecurringItem](base, page, "start_date ASC, name ASC")
	if err != nil {
		return nil, readError(err)
	}
	return result, nil
}

// GetRecurringItemByID returns a recurring item by ID.
func (s *recurringItemService) GetRecurringItemByID(ctx context.Context, id string) (*models.RecurringItem, error) {
	var item models.RecurringItem
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringItemNotFound
		}
		return nil, readError(err)
	}
	return &item, nil
}

// UpdateRecurringItem applies the non-nil fields of in.
func (s *recurringItemService) UpdateRecurringItem(ctx context.Context, id string, in RecurringItemUpdate) (*models.RecurringItem, error) {
	item, err := s.GetRecurringItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	start := item.StartDate
	if in.StartDate != nil {
		start = *in.StartDate
	}
	end := item.EndDate
	if in.EndDate != nil {
		end = in.EndDate
	}
	if in.ClearEndDate {
		end = nil
	}
	if end != nil && end.Before(start.Time) {
		return nil, apperrors.ErrInvalidDateRange
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
	if in.Frequency != nil {
		updates["frequency"] = *in.Frequency
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.EndDate != nil || in.ClearEndDate {
		updates["end_date"] = end
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Payday != nil {
		updates["payday"] = *in.Payday
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}
	if in.Upcoming != nil {
		updates["upcoming"] = *in.Upcoming
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetRecurringItemByID(ctx, id)
}

// DeleteRecurringItem soft-deletes a recurring item and drops its payday adjustments.
func (s *recurringItemService) DeleteRecurringItem(ctx context.Context, id string) error {
	item, err := s.GetRecurringItemByID(ctx, id)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("recurring_item_id = ?", item.ID).Delete(&models.PaydayAdjustment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(item).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
