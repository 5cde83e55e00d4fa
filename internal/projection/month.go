package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

const (
	monthLabelLayout = "January 2006"
	monthKeyLayout   = "2006-01"
)

// MonthProjection is the cash flow of one month of a projection series.
type MonthProjection struct {
	Month             string          `json:"month"`
	MonthKey          string          `json:"month_key"`
	MonthStart        models.Date     `json:"month_start"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	RecurringIncome   decimal.Decimal `json:"recurring_income"`
	OneTimeIncome     decimal.Decimal `json:"one_time_income"`
	InvestmentIncome  decimal.Decimal `json:"investment_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	RecurringExpenses decimal.Decimal `json:"recurring_expenses"`
	OneTimeExpenses   decimal.Decimal `json:"one_time_expenses"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
}

// MonthLabel formats the display label of the month containing t.
func MonthLabel(t time.Time) string {
	return t.Format(monthLabelLayout)
}

// MonthKey formats the machine key (YYYY-MM) of the month containing t.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first day of that month.
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(monthKeyLayout, key)
}

// monthsBetween counts whole calendar months from the month of a to the month of b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
