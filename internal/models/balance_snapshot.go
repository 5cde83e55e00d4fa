package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceSnapshot records the realized cash balance and investment value at a point in time.
// Snapshots are immutable time-series rows, so there is no Base embed and no soft delete.
type BalanceSnapshot struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	RecordedAt      time.Time       `gorm:"not null;uniqueIndex" json:"recorded_at"`
	CashBalance     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"cash_balance"`
	InvestmentValue decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"investment_value"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (s *BalanceSnapshot) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}
