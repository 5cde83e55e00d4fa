package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/pagination"
)

// holdingService handles the holdings kept inside portfolios.
type holdingService struct {
	db *gorm.DB
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db}
}

// CreateHolding validates and stores a new holding in an existing portfolio.
func (s *holdingService) CreateHolding(ctx context.Context, in HoldingInput) (*models.Holding, error) {
	ticker := normalizeTicker(in.Ticker)
	if ticker == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	currentPrice := in.AvgPrice
	if in.CurrentPrice != nil {
		currentPrice = *in.CurrentPrice
	}
	if err := validateHolding(&in.Shares, &in.AvgPrice, &currentPrice); err != nil {
		return nil, err
	}
	if err := s.portfolioExists(ctx, in.PortfolioID); err != nil {
		return nil, err
	}

	h := &models.Holding{
		PortfolioID:  in.PortfolioID,
		Ticker:       ticker,
		Name:         in.Name,
		Shares:       in.Shares,
		AvgPrice:     in.AvgPrice,
		CurrentPrice: currentPrice,
		PurchaseDate: in.PurchaseDate,
	}
	if err := s.db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return h, nil
}

// GetHoldings returns a paginated list of holdings, optionally for one portfolio.
func (s *holdingService) GetHoldings(
	ctx context.Context,
	page pagination.PageRequest,
	portfolioID *string,
) (*pagination.PageResponse[models.Holding], error) {
	base := s.db.WithContext(ctx).Model(&models.Holding{})
	if portfolioID != nil {
		if err := s.portfolioExists(ctx, *portfolioID); err != nil {
			return nil, err
		}
		base = base.Where("portfolio_id = ?", *portfolioID)
	}

	result, err := pagination.Find[models.Holding](base, page, "ticker ASC, id ASC")
	if err != nil {
		return nil, readError(err)
	}
	return result, nil
}

// GetHoldingByID returns a holding by ID.
func (s *holdingService) GetHoldingByID(ctx context.Context, id string) (*models.Holding, error) {
	var h models.Holding
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, readError(err)
	}
	return &h, nil
}

// UpdateHolding applies the non-nil fields of in.
func (s *holdingService) UpdateHolding(ctx context.Context, id string, in HoldingUpdate) (*models.Holding, error) {
	h, err := s.GetHoldingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateHolding(in.Shares, in.AvgPrice, in.CurrentPrice); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Ticker != nil {
		ticker := normalizeTicker(*in.Ticker)
		if ticker == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
		}
		updates["ticker"] = ticker
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Shares != nil {
		updates["shares"] = *in.Shares
	}
	if in.AvgPrice != nil {
		updates["avg_price"] = *in.AvgPrice
	}
	if in.CurrentPrice != nil {
		updates["current_price"] = *in.CurrentPrice
	}
	if in.PurchaseDate != nil {
		updates["purchase_date"] = *in.PurchaseDate
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(h).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetHoldingByID(ctx, id)
}

// DeleteHolding soft-deletes a holding.
func (s *holdingService) DeleteHolding(ctx context.Context, id string) error {
	h, err := s.GetHoldingByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(h).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *holdingService) portfolioExists(ctx context.Context, id string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.InvestmentPortfolio{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrPortfolioNotFound
	}
	return nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

func validateHolding(shares, avgPrice, currentPrice *decimal.Decimal) error {
	if shares != nil && !shares.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must be positive")
	}
	if avgPrice != nil && avgPrice.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Average price must not be negative")
	}
	if currentPrice != nil && currentPrice.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Current price must not be negative")
	}
	return nil
}
