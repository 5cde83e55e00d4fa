package models

import (
	"github.com/shopspring/decimal"
)

// EntryKind separates the income ledger from the expense ledger.
type EntryKind string

const (
	EntryKindIncome  EntryKind = "income"
	EntryKindExpense EntryKind = "expense"
)

// Frequency represents how often a recurring item repeats.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Frequencies lists every supported frequency.
var Frequencies = []Frequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly}

// RecurringItem is a repeating income or expense such as a salary or rent.
// An item with Active=false or Upcoming=true is kept but ignored by projections.
type RecurringItem struct {
	Base
	Name      string          `gorm:"size:200;not null" json:"name"`
	Kind      EntryKind       `gorm:"size:16;not null;index" json:"kind"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Frequency Frequency       `gorm:"size:16;not null" json:"frequency"`
	StartDate Date            `gorm:"type:date;not null" json:"start_date"`
	EndDate   *Date           `gorm:"type:date" json:"end_date,omitempty"`
	Category  string          `gorm:"size:100" json:"category,omitempty"`
	Payday    int             `json:"payday,omitempty"`
	Active    bool            `gorm:"not null" json:"active"`
	Upcoming  bool            `gorm:"not null" json:"upcoming"`
}

// OneTimeItem is a single dated income or expense.
type OneTimeItem struct {
	Base
	Name     string          `gorm:"size:200;not null" json:"name"`
	Kind     EntryKind       `gorm:"size:16;not null;index" json:"kind"`
	Amount   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Date     Date            `gorm:"type:date;not null;index" json:"date"`
	Category string          `gorm:"size:100" json:"category,omitempty"`
	Upcoming bool            `gorm:"not null" json:"upcoming"`
}

// PaydayAdjustment overrides the day of month a recurring item is paid on
// for one specific month. It only affects display, never occurrence counting.
type PaydayAdjustment struct {
	Base
	RecurringItemID string `gorm:"type:varchar(36);not null;uniqueIndex:uq_payday_item_month" json:"recurring_item_id"`
	Year            int    `gorm:"not null;uniqueIndex:uq_payday_item_month" json:"year"`
	Month           int    `gorm:"not null;uniqueIndex:uq_payday_item_month" json:"month"`
	Day             int    `gorm:"not null" json:"day"`
}
