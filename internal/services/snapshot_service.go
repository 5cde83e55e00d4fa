package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/projection"
)

// snapshotService records the realized balance over time.
type snapshotService struct {
	db          *gorm.DB
	projections ProjectionServicer
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB, projections ProjectionServicer) SnapshotServicer {
	return &snapshotService{db: db, projections: projections}
}

// RecordSnapshot computes the current balance and the value of the active
// portfolios and stores them at recordedAt, replacing any snapshot already
// taken at that instant.
func (s *snapshotService) RecordSnapshot(ctx context.Context, recordedAt time.Time) (*models.BalanceSnapshot, error) {
	history, err := s.projections.History(ctx)
	if err != nil {
		return nil, err
	}
	cash := projection.CurrentBalance(history).Round(2)

	var investmentValue decimal.Decimal
	if err := s.db.WithContext(ctx).Model(&models.InvestmentPortfolio{}).
		Where("active = ?", true).
		Select("COALESCE(SUM(current_value), 0)").
		Row().
		Scan(&investmentValue); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	investmentValue = investmentValue.Round(2)

	snapshot := &models.BalanceSnapshot{
		RecordedAt:      recordedAt.UTC(),
		CashBalance:     cash,
		InvestmentValue: investmentValue,
		Total:           cash.Add(investmentValue),
	}

	var existing models.BalanceSnapshot
	result := s.db.WithContext(ctx).Where("recorded_at = ?", snapshot.RecordedAt).Limit(1).Find(&existing)
	if result.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected > 0 {
		if err := s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"cash_balance":     snapshot.CashBalance,
			"investment_value": snapshot.InvestmentValue,
			"total":            snapshot.Total,
		}).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		snapshot.ID = existing.ID
		return snapshot, nil
	}

	if err := s.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshot, nil
}

// GetSnapshots returns paginated snapshots within a time range, newest first.
func (s *snapshotService) GetSnapshots(
	ctx context.Context,
	from, to time.Time,
	page pagination.PageRequest,
) (*pagination.PageResponse[models.BalanceSnapshot], error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	base := s.db.WithContext(ctx).Model(&models.BalanceSnapshot{}).
		Where("recorded_at >= ? AND recorded_at <= ?", from.UTC(), to.UTC())

	result, err := pagination.Find[models.BalanceSnapshot](base, page, "recorded_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}
