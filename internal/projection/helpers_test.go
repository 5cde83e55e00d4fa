package projection

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func monthly(name, amount string, start time.Time) models.RecurringItem {
	return models.RecurringItem{
		Base:      models.Base{ID: name},
		Name:      name,
		Amount:    dec(amount),
		Frequency: models.FrequencyMonthly,
		StartDate: models.DateOf(start),
		Active:    true,
	}
}

// fakeLedger is an in-memory LedgerRepository.
type fakeLedger struct {
	recurring []models.RecurringItem
	oneTime   []models.OneTimeItem
	err       error
	calls     int
}

func (f *fakeLedger) FindActive(_ context.Context) ([]models.RecurringItem, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RecurringItem
	for _, r := range f.recurring {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLedger) FindOneTimeInRange(_ context.Context, from, to time.Time) ([]models.OneTimeItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.OneTimeItem
	for _, o := range f.oneTime {
		if withinDays(o.Date.Time, from, to) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeLedger) EarliestDate(_ context.Context) (*time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	var earliest *time.Time
	consider := func(t time.Time) {
		if earliest == nil || t.Before(*earliest) {
			e := t
			earliest = &e
		}
	}
	for _, r := range f.recurring {
		consider(r.StartDate.Time)
	}
	for _, o := range f.oneTime {
		consider(o.Date.Time)
	}
	return earliest, nil
}

// fakePortfolios is an in-memory PortfolioRepository.
type fakePortfolios struct {
	portfolios []models.InvestmentPortfolio
	err        error
}

func (f *fakePortfolios) FindActive(_ context.Context) ([]models.InvestmentPortfolio, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.portfolios, nil
}

var (
	_ LedgerRepository    = (*fakeLedger)(nil)
	_ PortfolioRepository = (*fakePortfolios)(nil)
)
