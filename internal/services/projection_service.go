package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/logger"
	"budgetcast/internal/projection"
	"budgetcast/internal/repository"
)

// projectionService runs the projection engine against the database.
type projectionService struct {
	db                  *gorm.DB
	engine              *projection.Engine
	analyzer            *projection.Analyzer
	settings            SettingServicer
	wishlist            WishlistServicer
	affordabilityMonths int
}

// NewProjectionService creates a new ProjectionServicer. affordabilityMonths is
// the forward horizon the wishlist analysis scans; opts configure the engine.
func NewProjectionService(
	db *gorm.DB,
	settings SettingServicer,
	wishlist WishlistServicer,
	affordabilityMonths int,
	opts ...projection.Option,
) ProjectionServicer {
	if affordabilityMonths < 1 {
		affordabilityMonths = projection.AffordabilityMonths
	}
	engine := projection.NewEngine(
		repository.NewIncomeRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewPortfolioRepository(db),
		opts...,
	)
	return &projectionService{
		db:                  db,
		engine:              engine,
		analyzer:            projection.NewAnalyzer(func() time.Time { return engine.Today() }),
		settings:            settings,
		wishlist:            wishlist,
		affordabilityMonths: affordabilityMonths,
	}
}

// Forward projects months months ahead. A nil months uses the configured default.
func (s *projectionService) Forward(ctx context.Context, months *int) ([]projection.MonthProjection, error) {
	n, err := s.horizon(ctx, months)
	if err != nil {
		return nil, err
	}
	series, err := s.engine.Forward(ctx, n)
	if err != nil {
		return nil, projectionError("forward", err)
	}
	return series, nil
}

// History projects from the earliest record through the current month.
func (s *projectionService) History(ctx context.Context) ([]projection.MonthProjection, error) {
	series, err := s.engine.UntilNow(ctx)
	if err != nil {
		return nil, projectionError("history", err)
	}
	return series, nil
}

// MonthDetails breaks one month down by item, with payday adjustments applied.
func (s *projectionService) MonthDetails(ctx context.Context, month time.Time) (*projection.MonthDetail, error) {
	detail, err := s.engine.Details(ctx, month)
	if err != nil {
		return nil, projectionError("details", err)
	}

	paydays, err := paydaysFor(ctx, s.db, month.Year(), int(month.Month()))
	if err != nil {
		return nil, err
	}
	for i := range detail.Recurring {
		if day, ok := paydays[detail.Recurring[i].ID]; ok {
			detail.Recurring[i].Payday = day
			detail.Recurring[i].PaydayAdjusted = true
		}
	}
	return detail, nil
}

// AnalyzeWishlist checks every unpurchased wishlist item against the current
// balance and the forward projection.
func (s *projectionService) AnalyzeWishlist(ctx context.Context) (*projection.Analysis, error) {
	items, err := s.wishlist.GetWishlistItems(ctx, nil)
	if err != nil {
		return nil, err
	}
	untilNow, err := s.engine.UntilNow(ctx)
	if err != nil {
		return nil, projectionError("wishlist history", err)
	}
	future, err := s.engine.Forward(ctx, s.affordabilityMonths)
	if err != nil {
		return nil, projectionError("wishlist forward", err)
	}

	analysis := s.analyzer.Analyze(items, untilNow, future)
	return &analysis, nil
}

func (s *projectionService) horizon(ctx context.Context, months *int) (int, error) {
	if months != nil {
		if *months < 1 || *months > MaxProjectionMonths {
			return 0, apperrors.ErrInvalidHorizon
		}
		return *months, nil
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return 0, err
	}
	return settings.ProjectionMonths, nil
}

// projectionError logs a failed projection and makes sure it leaves as an AppError.
func projectionError(mode string, err error) error {
	logger.Get().Errorw("projection failed", "mode", mode, "error", err)
	return readError(err)
}
