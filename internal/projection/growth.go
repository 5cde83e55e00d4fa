package projection

import (
	"math"

	"github.com/shopspring/decimal"

	"budgetcast/internal/models"
)

// growthScale is the number of decimal places kept for intermediate
// portfolio values. Output figures are rounded to cents separately.
const growthScale = 12

var one = decimal.NewFromInt(1)

// MonthlyRate converts a mean annual return in percent into the effective
// monthly rate (1 + annual/100)^(1/12) - 1.
func MonthlyRate(annualReturnPercent decimal.Decimal) decimal.Decimal {
	annual, _ := annualReturnPercent.Float64()
	base := 1 + annual/100
	if base <= 0 {
		return one.Neg()
	}
	return decimal.NewFromFloat(math.Pow(base, 1.0/12) - 1)
}

// ProjectValue simulates a portfolio forward by steps months. Each month the
// contribution is added first and the whole value then grows by the monthly
// rate.
func ProjectValue(initial, monthlyContribution, annualReturnPercent decimal.Decimal, steps int) decimal.Decimal {
	return newGrowthPath(initial, monthlyContribution, annualReturnPercent).valueAt(steps)
}

// growthPath memoizes the value of one portfolio after each step.
type growthPath struct {
	contribution decimal.Decimal
	factor       decimal.Decimal
	values       []decimal.Decimal
}

func newGrowthPath(initial, contribution, annualReturnPercent decimal.Decimal) *growthPath {
	return &growthPath{
		contribution: contribution,
		factor:       one.Add(MonthlyRate(annualReturnPercent)),
		values:       []decimal.Decimal{initial},
	}
}

func (g *growthPath) valueAt(step int) decimal.Decimal {
	if step < 0 {
		step = 0
	}
	for len(g.values) <= step {
		last := g.values[len(g.values)-1]
		g.values = append(g.values, last.Add(g.contribution).Mul(g.factor).Round(growthScale))
	}
	return g.values[step]
}

// returnAt is the growth earned during month step, excluding the contribution.
func (g *growthPath) returnAt(step int) decimal.Decimal {
	return g.valueAt(step + 1).Sub(g.valueAt(step)).Sub(g.contribution)
}

// Growth follows every active portfolio of one projection. Values are
// computed incrementally, so walking a horizon month by month stays linear.
type Growth struct {
	paths []*growthPath
}

// NewGrowth builds the growth model of the active portfolios.
func NewGrowth(portfolios []models.InvestmentPortfolio) *Growth {
	g := &Growth{}
	for i := range portfolios {
		p := &portfolios[i]
		if !p.Active {
			continue
		}
		g.paths = append(g.paths, newGrowthPath(p.CurrentValue, p.MonthlyContribution, p.MeanReturnPercent))
	}
	return g
}

// ValueAt returns the combined portfolio value after step months.
func (g *Growth) ValueAt(step int) decimal.Decimal {
	total := decimal.Zero
	if g == nil {
		return total
	}
	for _, p := range g.paths {
		total = total.Add(p.valueAt(step))
	}
	return total
}

// ReturnAt returns the combined investment income of month step: the value
// after step+1 months, minus the value after step months, minus that month's
// contributions.
func (g *Growth) ReturnAt(step int) decimal.Decimal {
	total := decimal.Zero
	if g == nil || step < 0 {
		return total
	}
	for _, p := range g.paths {
		total = total.Add(p.returnAt(step))
	}
	return total
}
