package main

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
	"budgetcast/internal/projection"
)

// formatAmount displays d in the given currency. Unknown codes fall back to
// the plain amount followed by the code.
func formatAmount(d decimal.Decimal, code string) string {
	currency := money.GetCurrency(code)
	if currency == nil {
		return d.StringFixed(2) + " " + code
	}
	minor := d.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

func projectionMarkdown(title string, series []projection.MonthProjection, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(series) == 0 {
		b.WriteString("No months to show.\n")
		return b.String()
	}

	b.WriteString("| Month | Income | Expenses | Investments | Net | Balance |\n")
	b.WriteString("|:--|--:|--:|--:|--:|--:|\n")
	for _, m := range series {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			m.Month,
			formatAmount(m.TotalIncome, code),
			formatAmount(m.TotalExpenses, code),
			formatAmount(m.InvestmentIncome, code),
			formatAmount(m.NetAmount, code),
			formatAmount(m.CumulativeBalance, code),
		)
	}
	return b.String()
}

func wishlistMarkdown(a *projection.Analysis, code, dateFormat string) string {
	var b strings.Builder
	b.WriteString("# Wishlist\n\n")

	s := a.Summary
	b.WriteString("| | |\n|:--|--:|\n")
	fmt.Fprintf(&b, "| Current balance | %s |\n", formatAmount(s.CurrentBalance, code))
	fmt.Fprintf(&b, "| Average monthly savings | %s |\n", formatAmount(s.AvgMonthlySavings, code))
	fmt.Fprintf(&b, "| Total cost | %s |\n", formatAmount(s.TotalCost, code))
	fmt.Fprintf(&b, "| Affordable now | %d of %d |\n", s.AffordableNowCount, s.TotalItems)

	if len(a.Items) == 0 {
		b.WriteString("\nThe wishlist is empty.\n")
		return b.String()
	}

	b.WriteString("\n| Item | Priority | Cost | Target | Affordable |\n|:--|:--|--:|:--|:--|\n")
	for _, item := range a.Items {
		target := "-"
		if item.TargetDate != nil && !item.TargetDate.IsZero() {
			target = models.FormatDate(*item.TargetDate, dateFormat)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escapeCell(item.Name),
			item.Priority,
			formatAmount(item.Cost, code),
			target,
			affordableLabel(item),
		)
	}
	return b.String()
}

func affordableLabel(item projection.ItemAffordability) string {
	switch {
	case item.CanAffordNow:
		return "now"
	case item.MonthsUntilAffordable == 0:
		return "unknown"
	case item.Estimated:
		return fmt.Sprintf("~%s (%d months)", item.AffordableByMonth, item.MonthsUntilAffordable)
	default:
		return fmt.Sprintf("%s (%d months)", item.AffordableByMonth, item.MonthsUntilAffordable)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
