package repository

import (
	"context"

	"gorm.io/gorm"

	"budgetcast/internal/models"
	"budgetcast/internal/projection"
)

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a PortfolioRepository.
func NewPortfolioRepository(db *gorm.DB) projection.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// FindActive returns the active portfolios.
func (r *portfolioRepository) FindActive(ctx context.Context) ([]models.InvestmentPortfolio, error) {
	var portfolios []models.InvestmentPortfolio
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id ASC").Find(&portfolios).Error; err != nil {
		return nil, readError(err)
	}
	return portfolios, nil
}
