package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
	"budgetcast/internal/projection"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"dollars", "1500", "USD", "$1,500.00"},
		{"cents are kept", "12.5", "USD", "$12.50"},
		{"no minor unit", "1500", "JPY", "¥1,500"},
		{"unknown code", "10", "XYZ", "10.00 XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAmount(decimal.RequireFromString(tt.amount), tt.code)
			if got != tt.want {
				t.Errorf("formatAmount(%s, %s) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestProjectionMarkdown(t *testing.T) {
	t.Run("one row per month", func(t *testing.T) {
		series := []projection.MonthProjection{
			{Month: "January 2026", TotalIncome: decimal.NewFromInt(3000), TotalExpenses: decimal.NewFromInt(1000), NetAmount: decimal.NewFromInt(2000), CumulativeBalance: decimal.NewFromInt(2000)},
			{Month: "February 2026", TotalIncome: decimal.NewFromInt(3000), TotalExpenses: decimal.NewFromInt(1000), NetAmount: decimal.NewFromInt(2000), CumulativeBalance: decimal.NewFromInt(4000)},
		}

		md := projectionMarkdown("Projection", series, "USD")

		if !strings.HasPrefix(md, "# Projection") {
			t.Errorf("expected title, got %q", md)
		}
		if !strings.Contains(md, "| February 2026 | $3,000.00 | $1,000.00 | $0.00 | $2,000.00 | $4,000.00 |") {
			t.Errorf("missing February row in:\n%s", md)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		md := projectionMarkdown("History", nil, "USD")
		if !strings.Contains(md, "No months to show.") {
			t.Errorf("expected empty notice, got %q", md)
		}
	})
}

func TestWishlistMarkdown(t *testing.T) {
	analysis := &projection.Analysis{
		Items: []projection.ItemAffordability{
			{
				WishlistItem: models.WishlistItem{Name: "Bike", Cost: decimal.NewFromInt(300), Priority: models.PriorityHigh, TargetDate: models.NewDate(2026, 7, 4).Ptr()},
				CanAffordNow: true,
			},
			{
				WishlistItem:          models.WishlistItem{Name: "Car | used", Cost: decimal.NewFromInt(9000), Priority: models.PriorityLow},
				MonthsUntilAffordable: 30,
				AffordableByMonth:     "June 2028",
				Estimated:             true,
			},
			{
				WishlistItem: models.WishlistItem{Name: "Boat", Cost: decimal.NewFromInt(50000), Priority: models.PriorityMedium},
			},
		},
		Summary: projection.AffordabilitySummary{
			TotalItems:         3,
			AffordableNowCount: 1,
			TotalCost:          decimal.NewFromInt(59300),
			CurrentBalance:     decimal.NewFromInt(500),
		},
	}

	md := wishlistMarkdown(analysis, "USD", "DD/MM/YYYY")

	for _, want := range []string{
		"| Affordable now | 1 of 3 |",
		"| Bike | high | $300.00 | 04/07/2026 | now |",
		`| Car \| used | low | $9,000.00 | - | ~June 2028 (30 months) |`,
		"| Boat | medium | $50,000.00 | - | unknown |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}
