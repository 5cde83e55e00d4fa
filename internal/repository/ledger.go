// Package repository implements the projection engine's read interfaces on
// top of gorm.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/projection"
)

// ledgerRepository reads one kind of entry (income or expense).
type ledgerRepository struct {
	db   *gorm.DB
	kind models.EntryKind
}

// NewLedgerRepository creates a LedgerRepository over the entries of kind.
func NewLedgerRepository(db *gorm.DB, kind models.EntryKind) projection.LedgerRepository {
	return &ledgerRepository{db: db, kind: kind}
}

// NewIncomeRepository is NewLedgerRepository for incomes.
func NewIncomeRepository(db *gorm.DB) projection.LedgerRepository {
	return NewLedgerRepository(db, models.EntryKindIncome)
}

// NewExpenseRepository is NewLedgerRepository for expenses.
func NewExpenseRepository(db *gorm.DB) projection.LedgerRepository {
	return NewLedgerRepository(db, models.EntryKindExpense)
}

// FindActive returns the active recurring items of the repository's kind.
// Upcoming items are returned too; the engine filters them.
func (r *ledgerRepository) FindActive(ctx context.Context) ([]models.RecurringItem, error) {
	var items []models.RecurringItem
	err := r.db.WithContext(ctx).
		Where("kind = ? AND active = ?", r.kind, true).
		Order("start_date ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, readError(err)
	}
	return items, nil
}

// FindOneTimeInRange returns the one-time items dated within [from, to].
// Every row of the kind is read and filtered on its parsed date: comparing
// the stored text in SQL would silently skip a row whose date is malformed.
func (r *ledgerRepository) FindOneTimeInRange(ctx context.Context, from, to time.Time) ([]models.OneTimeItem, error) {
	var rows []models.OneTimeItem
	err := r.db.WithContext(ctx).
		Where("kind = ?", r.kind).
		Order("date ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, readError(err)
	}

	start, end := models.DateOf(from).Time, models.DateOf(to).Time
	items := make([]models.OneTimeItem, 0, len(rows))
	for _, item := range rows {
		if item.Date.Before(start) || item.Date.After(end) {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// EarliestDate returns the earliest recurring start date or one-time date of
// the repository's kind, including inactive and upcoming records.
func (r *ledgerRepository) EarliestDate(ctx context.Context) (*time.Time, error) {
	recurring, err := r.minDate(ctx, &models.RecurringItem{}, "start_date")
	if err != nil {
		return nil, err
	}
	oneTime, err := r.minDate(ctx, &models.OneTimeItem{}, "date")
	if err != nil {
		return nil, err
	}

	switch {
	case recurring == nil:
		return oneTime, nil
	case oneTime == nil:
		return recurring, nil
	case oneTime.Before(*recurring):
		return oneTime, nil
	}
	return recurring, nil
}

func (r *ledgerRepository) minDate(ctx context.Context, model interface{}, column string) (*time.Time, error) {
	var earliest *models.Date
	err := r.db.WithContext(ctx).
		Model(model).
		Where("kind = ?", r.kind).
		Select("MIN(" + column + ")").
		Row().
		Scan(&earliest)
	if err != nil {
		return nil, readError(err)
	}
	if earliest == nil || earliest.IsZero() {
		return nil, nil
	}
	t := earliest.Time
	return &t, nil
}

// readError maps a failed read to an AppError. Rows holding a date that
// cannot be parsed are a data integrity problem, not a server fault.
func readError(err error) error {
	if errors.Is(err, models.ErrMalformedDate) {
		return apperrors.Wrap(apperrors.ErrDataIntegrity, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
