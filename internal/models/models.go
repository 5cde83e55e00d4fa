// Package models holds the persisted records of the budget tracker.
package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts are emitted as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// All lists every model, in dependency order.
func All() []interface{} {
	return []interface{}{
		&RecurringItem{},
		&OneTimeItem{},
		&PaydayAdjustment{},
		&InvestmentPortfolio{},
		&Holding{},
		&WishlistItem{},
		&WishlistCategory{},
		&Setting{},
		&BalanceSnapshot{},
	}
}
