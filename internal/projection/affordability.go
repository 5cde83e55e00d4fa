package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

const (
	// AffordabilityMonths is the forward horizon scanned for each wishlist item.
	AffordabilityMonths = 24
	// savingsWindow is how many future months the average savings is taken over.
	savingsWindow = 6
)

var hundred = decimal.NewFromInt(100)

// ItemAffordability is the analysis of one wishlist item.
//
// MonthsUntilAffordable is 0 both for items affordable now and for items
// whose date cannot be forecast (no positive savings and out of horizon);
// CanAffordNow tells the two apart. CumulativeBalanceWhenAffordable is the
// projected balance of the month the item becomes affordable, and 0 when
// that month was estimated or the item is affordable now.
type ItemAffordability struct {
	models.WishlistItem
	CanAffordNow                    bool             `json:"can_afford_now"`
	BalancePercentage               decimal.Decimal  `json:"balance_percentage"`
	BalanceAfterPurchase            decimal.Decimal  `json:"balance_after_purchase"`
	MonthsUntilAffordable           int              `json:"months_until_affordable"`
	AffordableByMonth               string           `json:"affordable_by_month,omitempty"`
	CumulativeBalanceWhenAffordable decimal.Decimal  `json:"cumulative_balance_when_affordable"`
	Estimated                       bool             `json:"estimated"`
	MonthsUntilTarget               int              `json:"months_until_target,omitempty"`
	RequiredMonthlySavings          *decimal.Decimal `json:"required_monthly_savings,omitempty"`
}

// AffordabilitySummary rolls the per-item results up.
type AffordabilitySummary struct {
	TotalItems          int             `json:"total_items"`
	TotalCost           decimal.Decimal `json:"total_cost"`
	AffordableNowCount  int             `json:"affordable_now_count"`
	PercentageOfBalance decimal.Decimal `json:"percentage_of_balance"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
	AvgMonthlySavings   decimal.Decimal `json:"avg_monthly_savings"`
}

// Analysis is the result of a wishlist affordability analysis.
type Analysis struct {
	Items       []ItemAffordability  `json:"items"`
	Summary     AffordabilitySummary `json:"summary"`
	Projections []MonthProjection    `json:"projections"`
}

// Analyzer classifies wishlist items against projected balances.
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer creates an Analyzer. A nil clock means time.Now.
func NewAnalyzer(now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{now: now}
}

// Analyze checks every unpurchased item against the balance the user has
// today (the last cumulative balance of untilNow) and against the future
// series, re-based onto that balance.
func (a *Analyzer) Analyze(items []models.WishlistItem, untilNow, future []MonthProjection) Analysis {
	balance := CurrentBalance(untilNow)
	rebased := Rebase(future, balance)
	avg := AverageSavings(future)

	result := Analysis{
		Items:       []ItemAffordability{},
		Projections: rebased,
		Summary: AffordabilitySummary{
			TotalCost:           decimal.Zero,
			PercentageOfBalance: decimal.Zero,
			CurrentBalance:      balance,
			AvgMonthlySavings:   round2(avg),
		},
	}

	for _, item := range items {
		if item.Purchased {
			continue
		}
		r := a.analyzeItem(item, balance, avg, rebased)
		result.Items = append(result.Items, r)
		result.Summary.TotalItems++
		result.Summary.TotalCost = result.Summary.TotalCost.Add(item.Cost)
		if r.CanAffordNow {
			result.Summary.AffordableNowCount++
		}
	}

	if balance.IsPositive() {
		result.Summary.PercentageOfBalance = percentOf(result.Summary.TotalCost, balance)
	}
	return result
}

func (a *Analyzer) analyzeItem(item models.WishlistItem, balance, avg decimal.Decimal, rebased []MonthProjection) ItemAffordability {
	r := ItemAffordability{
		WishlistItem:                    item,
		CanAffordNow:                    balance.GreaterThanOrEqual(item.Cost),
		BalancePercentage:               decimal.Zero,
		BalanceAfterPurchase:            round2(balance.Sub(item.Cost)),
		CumulativeBalanceWhenAffordable: decimal.Zero,
	}
	if balance.IsPositive() {
		r.BalancePercentage = percentOf(item.Cost, balance)
	}
	if r.CanAffordNow {
		return r
	}

	for i, m := range rebased {
		if m.CumulativeBalance.GreaterThanOrEqual(item.Cost) {
			r.MonthsUntilAffordable = i + 1
			r.AffordableByMonth = m.Month
			r.CumulativeBalanceWhenAffordable = round2(m.CumulativeBalance)
			break
		}
	}
	if r.MonthsUntilAffordable == 0 && avg.IsPositive() {
		shortfall := item.Cost.Sub(balance)
		r.MonthsUntilAffordable = int(shortfall.Div(avg).Floor().IntPart()) + 1
		r.AffordableByMonth = MonthLabel(a.monthOffset(rebased, r.MonthsUntilAffordable-1))
		r.Estimated = true
	}

	if item.TargetDate != nil && !item.TargetDate.IsZero() {
		months := monthsBetween(models.FirstOfMonth(a.now()), item.TargetDate.Time)
		if months < 1 {
			months = 1
		}
		required := round2(item.Cost.Sub(balance).Div(decimal.NewFromInt(int64(months))))
		r.MonthsUntilTarget = months
		r.RequiredMonthlySavings = &required
	}
	return r
}

// monthOffset returns the start of the month n months after the first
// projected month.
func (a *Analyzer) monthOffset(series []MonthProjection, n int) time.Time {
	first := models.FirstOfMonth(a.now())
	if len(series) > 0 {
		first = series[0].MonthStart.Time
	}
	return first.AddDate(0, n, 0)
}

// percentOf is part as a percentage of whole, to one decimal place.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return part.Div(whole).Mul(hundred).Round(1)
}

// CurrentBalance is the last cumulative balance of a series, or zero.
func CurrentBalance(series []MonthProjection) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}
	return series[len(series)-1].CumulativeBalance
}

// Rebase returns a copy of series with offset added to every cumulative balance.
func Rebase(series []MonthProjection, offset decimal.Decimal) []MonthProjection {
	out := make([]MonthProjection, len(series))
	for i, m := range series {
		m.CumulativeBalance = m.CumulativeBalance.Add(offset)
		out[i] = m
	}
	return out
}

// AverageSavings is the mean net amount over the first months of series.
func AverageSavings(series []MonthProjection) decimal.Decimal {
	n := len(series)
	if n > savingsWindow {
		n = savingsWindow
	}
	if n == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, m := range series[:n] {
		total = total.Add(m.NetAmount)
	}
	return total.Div(decimal.NewFromInt(int64(n)))
}
