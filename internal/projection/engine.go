package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// DefaultMonths is the forward horizon used when none is given.
const DefaultMonths = 12

// LedgerRepository reads one side of the ledger. The engine is given one
// repository for incomes and one for expenses.
type LedgerRepository interface {
	// FindActive returns the recurring items flagged active.
	FindActive(ctx context.Context) ([]models.RecurringItem, error)
	// FindOneTimeInRange returns the one-time items dated within [from, to].
	FindOneTimeInRange(ctx context.Context, from, to time.Time) ([]models.OneTimeItem, error)
	// EarliestDate returns the earliest recurring start date or one-time
	// date of any record, or nil when there are no records.
	EarliestDate(ctx context.Context) (*time.Time, error)
}

// PortfolioRepository reads investment portfolios.
type PortfolioRepository interface {
	FindActive(ctx context.Context) ([]models.InvestmentPortfolio, error)
}

// Engine produces projection series from the current contents of its
// repositories.
type Engine struct {
	incomes    LedgerRepository
	expenses   LedgerRepository
	portfolios PortfolioRepository
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine.
func NewEngine(incomes, expenses LedgerRepository, portfolios PortfolioRepository, opts ...Option) *Engine {
	e := &Engine{
		incomes:    incomes,
		expenses:   expenses,
		portfolios: portfolios,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the current calendar day according to the engine clock.
func (e *Engine) Today() time.Time {
	return dayOf(e.now())
}

// Forward projects the next months months, starting with the current month.
func (e *Engine) Forward(ctx context.Context, months int) ([]MonthProjection, error) {
	if months <= 0 {
		return []MonthProjection{}, nil
	}
	first := models.FirstOfMonth(e.Today())
	last := models.LastOfMonth(first.AddDate(0, months-1, 0))

	src, growth, err := e.load(ctx, first, last)
	if err != nil {
		return nil, err
	}
	return series(first, months, time.Time{}, src, growth), nil
}

// UntilNow projects from the month of the earliest record through the
// current month. It returns an empty series when there are no records.
func (e *Engine) UntilNow(ctx context.Context) ([]MonthProjection, error) {
	earliest, err := e.earliest(ctx)
	if err != nil {
		return nil, err
	}
	if earliest == nil {
		return []MonthProjection{}, nil
	}

	today := e.Today()
	first := models.FirstOfMonth(*earliest)
	months := monthsBetween(first, today) + 1
	if months <= 0 {
		return []MonthProjection{}, nil
	}

	src, growth, err := e.load(ctx, first, models.LastOfMonth(today))
	if err != nil {
		return nil, err
	}
	return series(first, months, today, src, growth), nil
}

// series walks months months from first, accumulating the running balance.
// A non-zero stopAfter ends the series before any month starting after it.
func series(first time.Time, months int, stopAfter time.Time, src Sources, growth *Growth) []MonthProjection {
	out := make([]MonthProjection, 0, months)
	balance := decimal.Zero
	for step := 0; step < months; step++ {
		start := first.AddDate(0, step, 0)
		if !stopAfter.IsZero() && start.After(stopAfter) {
			break
		}
		m := AggregateMonth(start, models.LastOfMonth(start), src, growth, step)
		balance = balance.Add(m.NetAmount)
		m.CumulativeBalance = balance
		out = append(out, m)
	}
	return out
}

// load reads every record needed for the horizon [from, to]. Any failure
// aborts the whole projection.
func (e *Engine) load(ctx context.Context, from, to time.Time) (Sources, *Growth, error) {
	var src Sources
	var err error

	if src.Incomes, err = loadLedger(ctx, e.incomes, from, to); err != nil {
		return Sources{}, nil, fmt.Errorf("load incomes: %w", err)
	}
	if src.Expenses, err = loadLedger(ctx, e.expenses, from, to); err != nil {
		return Sources{}, nil, fmt.Errorf("load expenses: %w", err)
	}

	portfolios, err := e.portfolios.FindActive(ctx)
	if err != nil {
		return Sources{}, nil, fmt.Errorf("load portfolios: %w", err)
	}
	return src, NewGrowth(portfolios), nil
}

func loadLedger(ctx context.Context, repo LedgerRepository, from, to time.Time) (Ledger, error) {
	recurring, err := repo.FindActive(ctx)
	if err != nil {
		return Ledger{}, err
	}
	oneTime, err := repo.FindOneTimeInRange(ctx, from, to)
	if err != nil {
		return Ledger{}, err
	}
	return Ledger{Recurring: recurring, OneTime: oneTime}, nil
}

func (e *Engine) earliest(ctx context.Context) (*time.Time, error) {
	incomes, err := e.incomes.EarliestDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("earliest income: %w", err)
	}
	expenses, err := e.expenses.EarliestDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("earliest expense: %w", err)
	}
	switch {
	case incomes == nil:
		return expenses, nil
	case expenses == nil:
		return incomes, nil
	case expenses.Before(*incomes):
		return expenses, nil
	}
	return incomes, nil
}
