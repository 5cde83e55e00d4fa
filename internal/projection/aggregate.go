package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// Ledger is one side of the books: either every income or every expense.
type Ledger struct {
	Recurring []models.RecurringItem
	OneTime   []models.OneTimeItem
}

// Sources are the records a projection is computed from.
type Sources struct {
	Incomes  Ledger
	Expenses Ledger
}

// AggregateMonth sums the incomes, expenses and investment return of the
// month [monthStart, monthEnd]. step is the position of the month in its
// series and selects the investment return of that month.
//
// Inactive and upcoming recurring items, and upcoming one-time items, are
// ignored. Figures are rounded to cents only here, at output. The cumulative
// balance is left for the caller to fill in.
func AggregateMonth(monthStart, monthEnd time.Time, src Sources, growth *Growth, step int) MonthProjection {
	recurringIncome := recurringTotal(src.Incomes.Recurring, monthStart, monthEnd)
	oneTimeIncome := oneTimeTotal(src.Incomes.OneTime, monthStart, monthEnd)
	investmentIncome := growth.ReturnAt(step)
	recurringExpenses := recurringTotal(src.Expenses.Recurring, monthStart, monthEnd)
	oneTimeExpenses := oneTimeTotal(src.Expenses.OneTime, monthStart, monthEnd)

	totalIncome := recurringIncome.Add(oneTimeIncome).Add(investmentIncome)
	totalExpenses := recurringExpenses.Add(oneTimeExpenses)

	return MonthProjection{
		Month:             MonthLabel(monthStart),
		MonthKey:          MonthKey(monthStart),
		MonthStart:        models.DateOf(monthStart),
		TotalIncome:       round2(totalIncome),
		RecurringIncome:   round2(recurringIncome),
		OneTimeIncome:     round2(oneTimeIncome),
		InvestmentIncome:  round2(investmentIncome),
		TotalExpenses:     round2(totalExpenses),
		RecurringExpenses: round2(recurringExpenses),
		OneTimeExpenses:   round2(oneTimeExpenses),
		NetAmount:         round2(totalIncome.Sub(totalExpenses)),
	}
}

// countsTowardProjection reports whether a recurring item is realized.
func countsTowardProjection(item *models.RecurringItem) bool {
	return item.Active && !item.Upcoming
}

func recurringTotal(items []models.RecurringItem, monthStart, monthEnd time.Time) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		item := &items[i]
		if !countsTowardProjection(item) {
			continue
		}
		// Month-long window: the precondition of monthly/yearly presence counting.
		n := OccurrencesInRange(item.StartDate.Time, endTime(item.EndDate), item.Frequency, monthStart, monthEnd)
		if n == 0 {
			continue
		}
		total = total.Add(item.Amount.Mul(decimal.NewFromInt(int64(n))))
	}
	return total
}

func oneTimeTotal(items []models.OneTimeItem, monthStart, monthEnd time.Time) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		item := &items[i]
		if item.Upcoming || !withinDays(item.Date.Time, monthStart, monthEnd) {
			continue
		}
		total = total.Add(item.Amount)
	}
	return total
}

// withinDays reports whether the calendar day of t is in [from, to].
func withinDays(t, from, to time.Time) bool {
	d := dayOf(t)
	return !d.Before(dayOf(from)) && !d.After(dayOf(to))
}
