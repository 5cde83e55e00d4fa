package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
)

// paydayService handles per-month payday adjustments of recurring items.
type paydayService struct {
	db *gorm.DB
}

// NewPaydayService creates a new PaydayServicer.
func NewPaydayService(db *gorm.DB) PaydayServicer {
	return &paydayService{db: db}
}

// GetPaydayAdjustments lists adjustments, optionally narrowed to a year and month.
func (s *paydayService) GetPaydayAdjustments(ctx context.Context, year, month *int) ([]models.PaydayAdjustment, error) {
	base := s.db.WithContext(ctx).Model(&models.PaydayAdjustment{})
	if year != nil {
		base = base.Where("year = ?", *year)
	}
	if month != nil {
		base = base.Where("month = ?", *month)
	}

	var adjustments []models.PaydayAdjustment
	if err := base.Order("year ASC, month ASC, day ASC").Find(&adjustments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if adjustments == nil {
		adjustments = []models.PaydayAdjustment{}
	}
	return adjustments, nil
}

// SetPaydayAdjustment creates or replaces the adjustment of one item for one month.
func (s *paydayService) SetPaydayAdjustment(ctx context.Context, recurringItemID string, year, month, day int) (*models.PaydayAdjustment, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Month must be between 1 and 12")
	}
	last := models.LastOfMonth(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)).Day()
	if day < 1 || day > last {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Day is outside the month")
	}

	var item models.RecurringItem
	if err := s.db.WithContext(ctx).Select("id").Where("id = ?", recurringItemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringItemNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var existing models.PaydayAdjustment
	result := s.db.WithContext(ctx).
		Where("recurring_item_id = ? AND year = ? AND month = ?", recurringItemID, year, month).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected > 0 {
		if err := s.db.WithContext(ctx).Model(&existing).Update("day", day).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		existing.Day = day
		return &existing, nil
	}

	adj := &models.PaydayAdjustment{
		RecurringItemID: recurringItemID,
		Year:            year,
		Month:           month,
		Day:             day,
	}
	if err := s.db.WithContext(ctx).Create(adj).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return adj, nil
}

// DeletePaydayAdjustment removes an adjustment permanently so the month can be set again.
func (s *paydayService) DeletePaydayAdjustment(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&models.PaydayAdjustment{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrPaydayNotFound
	}
	return nil
}

// paydaysFor returns the adjusted day of each recurring item for one month.
func paydaysFor(ctx context.Context, db *gorm.DB, year, month int) (map[string]int, error) {
	var adjustments []models.PaydayAdjustment
	if err := db.WithContext(ctx).Where("year = ? AND month = ?", year, month).Find(&adjustments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	days := make(map[string]int, len(adjustments))
	for _, a := range adjustments {
		days[a.RecurringItemID] = a.Day
	}
	return days, nil
}
