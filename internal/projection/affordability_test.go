package projection

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// seriesOf builds a projection series starting at first with the given nets.
func seriesOf(first time.Time, nets ...string) []MonthProjection {
	out := make([]MonthProjection, 0, len(nets))
	balance := decimal.Zero
	for i, n := range nets {
		start := first.AddDate(0, i, 0)
		balance = balance.Add(dec(n))
		out = append(out, MonthProjection{
			Month:             MonthLabel(start),
			MonthKey:          MonthKey(start),
			MonthStart:        models.DateOf(start),
			NetAmount:         dec(n),
			CumulativeBalance: balance,
		})
	}
	return out
}

func repeat(n int, s string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func wish(name, cost string) models.WishlistItem {
	return models.WishlistItem{Base: models.Base{ID: name}, Name: name, Cost: dec(cost), Priority: models.PriorityMedium}
}

func TestAnalyzer_Analyze(t *testing.T) {
	now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	a := NewAnalyzer(fixedClock(now))
	jan := day(2026, time.January, 1)

	// balance today 1000, then 2000 saved every month
	untilNow := seriesOf(day(2025, time.November, 1), "400", "400", "200")
	future := seriesOf(jan, repeat(AffordabilityMonths, "2000")...)

	t.Run("affordable now", func(t *testing.T) {
		got := a.Analyze([]models.WishlistItem{wish("book", "1000")}, untilNow, future)
		item := got.Items[0]
		if !item.CanAffordNow || item.MonthsUntilAffordable != 0 || item.AffordableByMonth != "" {
			t.Errorf("unexpected result %+v", item)
		}
		assertDecimal(t, "balance percentage", item.BalancePercentage, "100")
	})

	t.Run("affordable within the horizon", func(t *testing.T) {
		got := a.Analyze([]models.WishlistItem{wish("bike", "6000")}, untilNow, future)
		item := got.Items[0]
		if item.CanAffordNow {
			t.Fatal("should not be affordable now")
		}
		if item.MonthsUntilAffordable != 3 || item.AffordableByMonth != "March 2026" {
			t.Errorf("expected 3 months / March 2026, got %d / %q", item.MonthsUntilAffordable, item.AffordableByMonth)
		}
		if item.Estimated {
			t.Error("in-horizon result should not be estimated")
		}
		assertDecimal(t, "balance percentage", item.BalancePercentage, "600")
	})

	t.Run("beyond the horizon is extrapolated", func(t *testing.T) {
		short := seriesOf(jan, "2000", "2000", "2000")
		got := a.Analyze([]models.WishlistItem{wish("car", "20000")}, untilNow, short)
		item := got.Items[0]
		// (20000 - 1000) / 2000 = 9.5 -> 10 months
		if item.MonthsUntilAffordable != 10 || !item.Estimated {
			t.Errorf("expected estimated 10 months, got %+v", item)
		}
		if item.AffordableByMonth != "October 2026" {
			t.Errorf("expected October 2026, got %q", item.AffordableByMonth)
		}
	})

	t.Run("no savings and out of horizon", func(t *testing.T) {
		flat := seriesOf(jan, repeat(AffordabilityMonths, "0")...)
		got := a.Analyze([]models.WishlistItem{wish("boat", "50000")}, untilNow, flat)
		item := got.Items[0]
		if item.CanAffordNow || item.MonthsUntilAffordable != 0 || item.AffordableByMonth != "" || item.Estimated {
			t.Errorf("expected no forecast, got %+v", item)
		}
	})

	t.Run("required monthly savings toward a target date", func(t *testing.T) {
		w := wish("bike", "6000")
		w.TargetDate = models.NewDate(2026, time.June, 1).Ptr()
		got := a.Analyze([]models.WishlistItem{w}, untilNow, future)
		item := got.Items[0]
		if item.MonthsUntilTarget != 5 {
			t.Errorf("expected 5 months until target, got %d", item.MonthsUntilTarget)
		}
		if item.RequiredMonthlySavings == nil {
			t.Fatal("expected required savings")
		}
		assertDecimal(t, "required", *item.RequiredMonthlySavings, "1000")
	})

	t.Run("past target date clamps to one month", func(t *testing.T) {
		w := wish("bike", "6000")
		w.TargetDate = models.NewDate(2025, time.December, 1).Ptr()
		got := a.Analyze([]models.WishlistItem{w}, untilNow, future)
		item := got.Items[0]
		if item.MonthsUntilTarget != 1 {
			t.Errorf("expected clamp to 1, got %d", item.MonthsUntilTarget)
		}
		assertDecimal(t, "required", *item.RequiredMonthlySavings, "5000")
	})

	t.Run("purchased items are skipped", func(t *testing.T) {
		bought := wish("phone", "800")
		bought.Purchased = true
		got := a.Analyze([]models.WishlistItem{bought, wish("desk", "300")}, untilNow, future)
		if len(got.Items) != 1 || got.Items[0].Name != "desk" {
			t.Fatalf("expected only desk, got %+v", got.Items)
		}
		if got.Summary.TotalItems != 1 {
			t.Errorf("expected 1 item in summary, got %d", got.Summary.TotalItems)
		}
	})

	t.Run("summary", func(t *testing.T) {
		got := a.Analyze([]models.WishlistItem{wish("a", "500"), wish("b", "6000"), wish("c", "250")}, untilNow, future)
		s := got.Summary
		if s.TotalItems != 3 || s.AffordableNowCount != 2 {
			t.Errorf("unexpected counts %+v", s)
		}
		assertDecimal(t, "total cost", s.TotalCost, "6750")
		assertDecimal(t, "current balance", s.CurrentBalance, "1000")
		assertDecimal(t, "percentage", s.PercentageOfBalance, "675")
		assertDecimal(t, "avg savings", s.AvgMonthlySavings, "2000")
		assertDecimal(t, "rebased first month", got.Projections[0].CumulativeBalance, "3000")
	})

	t.Run("non-positive balance leaves percentages at zero", func(t *testing.T) {
		debt := seriesOf(day(2025, time.December, 1), "-300")
		got := a.Analyze([]models.WishlistItem{wish("a", "100")}, debt, future)
		assertDecimal(t, "item percentage", got.Items[0].BalancePercentage, "0")
		assertDecimal(t, "summary percentage", got.Summary.PercentageOfBalance, "0")
		if got.Items[0].CanAffordNow {
			t.Error("cannot afford with a negative balance")
		}
	})

	t.Run("empty wishlist", func(t *testing.T) {
		got := a.Analyze(nil, nil, nil)
		if got.Items == nil || len(got.Items) != 0 {
			t.Errorf("expected empty items, got %v", got.Items)
		}
		assertDecimal(t, "balance", got.Summary.CurrentBalance, "0")
	})
}

func TestAnalyzer_Scenarios(t *testing.T) {
	a := NewAnalyzer(fixedClock(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))
	jan := day(2026, time.January, 1)

	tests := []struct {
		name                  string
		untilNow              []MonthProjection
		future                []MonthProjection
		cost                  string
		canAffordNow          bool
		monthsUntil           int
		byMonth               string
		balancePercentage     string
		balanceAfterPurchase  string
		balanceWhenAffordable string
	}{
		{
			// 3000 income and 1000 expense a month from a zero balance
			name:                  "zero balance reaches cost in third month",
			future:                seriesOf(jan, "2000", "2000", "2000"),
			cost:                  "6000",
			monthsUntil:           3,
			byMonth:               "March 2026",
			balancePercentage:     "0",
			balanceAfterPurchase:  "-6000",
			balanceWhenAffordable: "6000",
		},
		{
			name:                  "affordable now keeps the horizon fields empty",
			untilNow:              seriesOf(day(2025, time.December, 1), "3000"),
			future:                seriesOf(jan, "2000", "2000", "2000"),
			cost:                  "1000",
			canAffordNow:          true,
			balancePercentage:     "33.3",
			balanceAfterPurchase:  "2000",
			balanceWhenAffordable: "0",
		},
		{
			name:                  "percentage rounds to one place",
			untilNow:              seriesOf(day(2025, time.December, 1), "3000"),
			future:                seriesOf(jan, "2000", "2000", "2000"),
			cost:                  "4000",
			monthsUntil:           1,
			byMonth:               "January 2026",
			balancePercentage:     "133.3",
			balanceAfterPurchase:  "-1000",
			balanceWhenAffordable: "5000",
		},
		{
			name:                  "estimated month has no projected balance",
			future:                seriesOf(jan, "2000", "2000"),
			cost:                  "9000",
			monthsUntil:           5,
			byMonth:               "May 2026",
			balancePercentage:     "0",
			balanceAfterPurchase:  "-9000",
			balanceWhenAffordable: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze([]models.WishlistItem{wish("item", tt.cost)}, tt.untilNow, tt.future)
			if len(got.Items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(got.Items))
			}
			item := got.Items[0]
			if item.CanAffordNow != tt.canAffordNow {
				t.Errorf("can_afford_now = %v, want %v", item.CanAffordNow, tt.canAffordNow)
			}
			if item.MonthsUntilAffordable != tt.monthsUntil || item.AffordableByMonth != tt.byMonth {
				t.Errorf("affordable in %d (%q), want %d (%q)", item.MonthsUntilAffordable, item.AffordableByMonth, tt.monthsUntil, tt.byMonth)
			}
			assertDecimal(t, "balance_percentage", item.BalancePercentage, tt.balancePercentage)
			assertDecimal(t, "balance_after_purchase", item.BalanceAfterPurchase, tt.balanceAfterPurchase)
			assertDecimal(t, "cumulative_balance_when_affordable", item.CumulativeBalanceWhenAffordable, tt.balanceWhenAffordable)
		})
	}
}

func TestAverageSavings(t *testing.T) {
	jan := day(2026, time.January, 1)
	assertDecimal(t, "empty", AverageSavings(nil), "0")
	assertDecimal(t, "short", AverageSavings(seriesOf(jan, "100", "200")), "150")
	// only the first six months count
	assertDecimal(t, "window", AverageSavings(seriesOf(jan, "60", "60", "60", "60", "60", "60", "9000")), "60")
}

func TestRebase(t *testing.T) {
	in := seriesOf(day(2026, time.January, 1), "10", "20")
	out := Rebase(in, dec("5"))
	assertDecimal(t, "first", out[0].CumulativeBalance, "15")
	assertDecimal(t, "second", out[1].CumulativeBalance, "35")
	assertDecimal(t, "input untouched", in[0].CumulativeBalance, "10")
}
