package projection

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// RecurringContribution is what one recurring item adds to a month.
// PaydayAdjusted is set when Payday comes from a per-month adjustment.
type RecurringContribution struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Kind           models.EntryKind `json:"kind"`
	Frequency      models.Frequency `json:"frequency"`
	Category       string           `json:"category,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	Occurrences    int              `json:"occurrences"`
	Total          decimal.Decimal  `json:"total"`
	Payday         int              `json:"payday,omitempty"`
	PaydayAdjusted bool             `json:"payday_adjusted,omitempty"`
}

// MonthDetail breaks one month down into the items that produced it.
type MonthDetail struct {
	MonthProjection
	Recurring      []RecurringContribution `json:"recurring"`
	OneTime        []models.OneTimeItem    `json:"one_time"`
	PortfolioValue decimal.Decimal         `json:"portfolio_value"`
}

// Details computes the breakdown of the month containing month. Portfolio
// values are only known from today on, so months before the current one
// carry no investment return.
func (e *Engine) Details(ctx context.Context, month time.Time) (*MonthDetail, error) {
	start := models.FirstOfMonth(month)
	end := models.LastOfMonth(start)

	src, growth, err := e.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	step := monthsBetween(models.FirstOfMonth(e.Today()), start)
	if step < 0 {
		growth = nil
	}

	m := AggregateMonth(start, end, src, growth, step)
	m.CumulativeBalance = m.NetAmount

	detail := &MonthDetail{
		MonthProjection: m,
		Recurring:       []RecurringContribution{},
		OneTime:         []models.OneTimeItem{},
		PortfolioValue:  round2(growth.ValueAt(step + 1)),
	}
	for _, ledger := range []Ledger{src.Incomes, src.Expenses} {
		detail.Recurring = append(detail.Recurring, contributions(ledger.Recurring, start, end)...)
		for i := range ledger.OneTime {
			item := ledger.OneTime[i]
			if item.Upcoming || !withinDays(item.Date.Time, start, end) {
				continue
			}
			detail.OneTime = append(detail.OneTime, item)
		}
	}
	return detail, nil
}

func contributions(items []models.RecurringItem, start, end time.Time) []RecurringContribution {
	var out []RecurringContribution
	for i := range items {
		item := &items[i]
		if !countsTowardProjection(item) {
			continue
		}
		n := OccurrencesInRange(item.StartDate.Time, endTime(item.EndDate), item.Frequency, start, end)
		if n == 0 {
			continue
		}
		out = append(out, RecurringContribution{
			ID:          item.ID,
			Name:        item.Name,
			Kind:        item.Kind,
			Frequency:   item.Frequency,
			Category:    item.Category,
			Amount:      item.Amount,
			Occurrences: n,
			Total:       round2(item.Amount.Mul(decimal.NewFromInt(int64(n)))),
			Payday:      item.Payday,
		})
	}
	return out
}
