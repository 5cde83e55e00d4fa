package models

import "github.com/shopspring/decimal"

// InvestmentPortfolio is a compounding growth stream: a starting value that
// receives a fixed monthly contribution and grows at a mean annual return.
type InvestmentPortfolio struct {
	Base
	Name                string          `gorm:"size:200;not null" json:"name"`
	CurrentValue        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"current_value"`
	MonthlyContribution decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"monthly_contribution"`
	MeanReturnPercent   decimal.Decimal `gorm:"type:numeric(8,4);not null" json:"mean_return_percent"`
	Active              bool            `gorm:"not null" json:"active"`
}
