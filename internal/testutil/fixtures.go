package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"budgetcast/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestRecurringItem creates an active, ongoing recurring item.
func CreateTestRecurringItem(t *testing.T, db *gorm.DB, kind models.EntryKind, amount string, freq models.Frequency, start time.Time) *models.RecurringItem {
	t.Helper()

	item := &models.RecurringItem{
		Name:      fmt.Sprintf("Test Recurring %d", nextID()),
		Kind:      kind,
		Amount:    decimal.RequireFromString(amount),
		Frequency: freq,
		StartDate: models.DateOf(start),
		Active:    true,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test recurring item: %v", err)
	}
	return item
}

// CreateTestOneTimeItem creates a one-time item on the given date.
func CreateTestOneTimeItem(t *testing.T, db *gorm.DB, kind models.EntryKind, amount string, date time.Time) *models.OneTimeItem {
	t.Helper()

	item := &models.OneTimeItem{
		Name:   fmt.Sprintf("Test One-Time %d", nextID()),
		Kind:   kind,
		Amount: decimal.RequireFromString(amount),
		Date:   models.DateOf(date),
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test one-time item: %v", err)
	}
	return item
}

// CreateTestPortfolio creates an active portfolio.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, value, contribution, meanReturn string) *models.InvestmentPortfolio {
	t.Helper()

	p := &models.InvestmentPortfolio{
		Name:                fmt.Sprintf("Test Portfolio %d", nextID()),
		CurrentValue:        decimal.RequireFromString(value),
		MonthlyContribution: decimal.RequireFromString(contribution),
		MeanReturnPercent:   decimal.RequireFromString(meanReturn),
		Active:              true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return p
}

// CreateTestWishlistItem creates an unpurchased wishlist item.
func CreateTestWishlistItem(t *testing.T, db *gorm.DB, cost string, priority models.Priority) *models.WishlistItem {
	t.Helper()

	item := &models.WishlistItem{
		Name:     fmt.Sprintf("Test Wish %d", nextID()),
		Cost:     decimal.RequireFromString(cost),
		Category: models.DefaultWishlistCategory,
		Priority: priority,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test wishlist item: %v", err)
	}
	return item
}

// CreateTestHolding adds a holding bought at price to the portfolio.
func CreateTestHolding(t *testing.T, db *gorm.DB, portfolioID, ticker, shares, price string) *models.Holding {
	t.Helper()

	p := decimal.RequireFromString(price)
	h := &models.Holding{
		PortfolioID:  portfolioID,
		Ticker:       ticker,
		Shares:       decimal.RequireFromString(shares),
		AvgPrice:     p,
		CurrentPrice: p,
		PurchaseDate: models.NewDate(2025, time.March, 3),
	}
	if err := db.Create(h).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return h
}

// CreateTestSnapshot records a balance snapshot at recordedAt.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, recordedAt time.Time, cash, investments string) *models.BalanceSnapshot {
	t.Helper()

	c := decimal.RequireFromString(cash)
	i := decimal.RequireFromString(investments)
	snap := &models.BalanceSnapshot{
		RecordedAt:      recordedAt,
		CashBalance:     c,
		InvestmentValue: i,
		Total:           c.Add(i),
	}
	if err := db.Create(snap).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snap
}
