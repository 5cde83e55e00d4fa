package models

import "github.com/shopspring/decimal"

// Holding is a position in one security, kept by hand inside a portfolio.
// A portfolio's value can be rebuilt from its holdings.
type Holding struct {
	Base
	PortfolioID  string          `gorm:"type:varchar(36);not null;index" json:"portfolio_id"`
	Ticker       string          `gorm:"size:20;not null" json:"ticker"`
	Name         string          `gorm:"size:200" json:"name,omitempty"`
	Shares       decimal.Decimal `gorm:"type:numeric(18,6);not null" json:"shares"`
	AvgPrice     decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"avg_price"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"current_price"`
	PurchaseDate Date            `gorm:"type:date;not null" json:"purchase_date"`
}

// MarketValue is shares times the current price.
func (h Holding) MarketValue() decimal.Decimal {
	return h.Shares.Mul(h.CurrentPrice)
}

// CostBasis is shares times the average purchase price.
func (h Holding) CostBasis() decimal.Decimal {
	return h.Shares.Mul(h.AvgPrice)
}
