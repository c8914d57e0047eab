package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// YieldAssumptions maps a category to its assumed annual yield (0.02 = 2%).
type YieldAssumptions map[string]float64

var (
	monthsPerYear = decimal.NewFromInt(12)
	daysPerYear   = decimal.NewFromInt(365)
)

// YieldEstimator projects passive income from category balances.
type YieldEstimator struct {
	yields map[string]decimal.Decimal
}

// NewYieldEstimator copies assumptions; later changes to the map are not seen.
func NewYieldEstimator(assumptions YieldAssumptions) *YieldEstimator {
	yields := make(map[string]decimal.Decimal, len(assumptions))
	for category, y := range assumptions {
		yields[category] = decimal.NewFromFloat(y)
	}
	return &YieldEstimator{yields: yields}
}

// Estimate returns annual, monthly and daily income. The annual sum is exact
// and each figure is floored only once, from that exact sum. Categories
// without an assumption earn nothing.
func (e *YieldEstimator) Estimate(totals []model.CategoryTotal) model.Income {
	annual := decimal.Zero
	for _, t := range totals {
		y, ok := e.yields[t.Category]
		if !ok {
			continue
		}
		annual = annual.Add(t.Balance.Decimal().Mul(y))
	}

	return model.Income{
		Annual:  floorMoney(annual),
		Monthly: floorMoney(annual.Div(monthsPerYear)),
		Daily:   floorMoney(annual.Div(daysPerYear)),
	}
}

func floorMoney(d decimal.Decimal) model.Money {
	return model.Money(d.Floor().IntPart())
}
