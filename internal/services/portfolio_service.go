package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
	"budgetcast/internal/projection"
	"budgetcast/internal/repository"
)

// MaxProjectionMonths bounds every projection horizon.
const MaxProjectionMonths = 120

// portfolioService handles investment portfolios.
type portfolioService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db, now: time.Now}
}

// CreatePortfolio validates and stores a new portfolio.
func (s *portfolioService) CreatePortfolio(ctx context.Context, in PortfolioInput) (*models.InvestmentPortfolio, error) {
	if err := validatePortfolioAmounts(&in.CurrentValue, &in.MonthlyContribution); err != nil {
		return nil, err
	}

	p := &models.InvestmentPortfolio{
		Name:                in.Name,
		CurrentValue:        in.CurrentValue,
		MonthlyContribution: in.MonthlyContribution,
		MeanReturnPercent:   in.MeanReturnPercent,
		Active:              in.Active,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return p, nil
}

// GetPortfolios returns a paginated list of portfolios.
func (s *portfolioService) GetPortfolios(
	ctx context.Context,
	page pagination.PageRequest,
	active *bool,
) (*pagination.PageResponse[models.InvestmentPortfolio], error) {
	base := s.db.WithContext(ctx).Model(&models.InvestmentPortfolio{})
	if active != nil {
		base = base.Where("active = ?", *active)
	}

	result, err := pagination.Find[models.InvestmentPortfolio](base, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

// GetPortfolioByID returns a portfolio by ID.
func (s *portfolioService) GetPortfolioByID(ctx context.Context, id string) (*models.InvestmentPortfolio, error) {
	var p models.InvestmentPortfolio
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &p, nil
}

// UpdatePortfolio applies the non-nil fields of in.
func (s *portfolioService) UpdatePortfolio(ctx context.Context, id string, in PortfolioUpdate) (*models.InvestmentPortfolio, error) {
	p, err := s.GetPortfolioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validatePortfolioAmounts(in.CurrentValue, in.MonthlyContribution); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.CurrentValue != nil {
		updates["current_value"] = *in.CurrentValue
	}
	if in.MonthlyContribution != nil {
		updates["monthly_contribution"] = *in.MonthlyContribution
	}
	if in.MeanReturnPercent != nil {
		updates["mean_return_percent"] = *in.MeanReturnPercent
	}
	if in.Active != nil {
		updates["active"] = *in.Active
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetPortfolioByID(ctx, id)
}

// DeletePortfolio soft-deletes a portfolio.
func (s *portfolioService) DeletePortfolio(ctx context.Context, id string) error {
	p, err := s.GetPortfolioByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(p).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ProjectPortfolio returns the value of one portfolio at the end of each of
// the next months months, starting with the current month.
func (s *portfolioService) ProjectPortfolio(ctx context.Context, id string, months int) ([]PortfolioProjectionPoint, error) {
	if months < 1 || months > MaxProjectionMonths {
		return nil, apperrors.ErrInvalidHorizon
	}
	p, err := s.GetPortfolioByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Inactive portfolios are projected as if they were active.
	active := *p
	active.Active = true
	growth := projection.NewGrowth([]models.InvestmentPortfolio{active})

	first := models.FirstOfMonth(s.now())
	points := make([]PortfolioProjectionPoint, 0, months)
	for step := 0; step < months; step++ {
		month := first.AddDate(0, step, 0)
		value := growth.ValueAt(step + 1)
		contributions := p.MonthlyContribution.Mul(decimal.NewFromInt(int64(step + 1)))
		points = append(points, PortfolioProjectionPoint{
			Month:         projection.MonthLabel(month),
			MonthKey:      projection.MonthKey(month),
			Value:         value.Round(2),
			Contributions: contributions.Round(2),
			Growth:        value.Sub(p.CurrentValue).Sub(contributions).Round(2),
		})
	}
	return points, nil
}

// ProjectPortfolios returns the combined value of every active portfolio at
// the end of each of the next months months, with the monthly contribution
// they receive together.
func (s *portfolioService) ProjectPortfolios(ctx context.Context, months int) ([]InvestmentProjectionPoint, error) {
	if months < 1 || months > MaxProjectionMonths {
		return nil, apperrors.ErrInvalidHorizon
	}
	portfolios, err := repository.NewPortfolioRepository(s.db).FindActive(ctx)
	if err != nil {
		return nil, err
	}

	growth := projection.NewGrowth(portfolios)
	contribution := decimal.Zero
	for _, p := range portfolios {
		contribution = contribution.Add(p.MonthlyContribution)
	}

	first := models.FirstOfMonth(s.now())
	points := make([]InvestmentProjectionPoint, 0, months)
	for step := 0; step < months; step++ {
		month := first.AddDate(0, step, 0)
		points = append(points, InvestmentProjectionPoint{
			Month:               projection.MonthLabel(month),
			MonthKey:            projection.MonthKey(month),
			Value:               growth.ValueAt(step + 1).Round(2),
			MonthlyContribution: contribution.Round(2),
		})
	}
	return points, nil
}

// RecalculatePortfolio sets a portfolio's current value to the market value
// of its holdings and reports the gain over what they cost.
func (s *portfolioService) RecalculatePortfolio(ctx context.Context, id string) (*PortfolioValuation, error) {
	p, err := s.GetPortfolioByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var holdings []models.Holding
	if err := s.db.WithContext(ctx).Where("portfolio_id = ?", id).Find(&holdings).Error; err != nil {
		return nil, readError(err)
	}

	value, invested := decimal.Zero, decimal.Zero
	for _, h := range holdings {
		value = value.Add(h.MarketValue())
		invested = invested.Add(h.CostBasis())
	}
	value = value.Round(2)
	invested = invested.Round(2)

	if err := s.db.WithContext(ctx).Model(p).Update("current_value", value).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	gain := value.Sub(invested)
	gainPercent := decimal.Zero
	if invested.IsPositive() {
		gainPercent = gain.Div(invested).Mul(decimal.NewFromInt(100)).Round(2)
	}

	updated, err := s.GetPortfolioByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &PortfolioValuation{
		Portfolio:       updated,
		CurrentValue:    value,
		TotalInvested:   invested,
		GainLoss:        gain,
		GainLossPercent: gainPercent,
		HoldingCount:    len(holdings),
	}, nil
}

func validatePortfolioAmounts(currentValue, contribution *decimal.Decimal) error {
	if currentValue != nil && currentValue.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Current value must not be negative")
	}
	if contribution != nil && contribution.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Monthly contribution must not be negative")
	}
	return nil
}
