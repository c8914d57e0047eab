package analytics

import "github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"

// DefaultForecastHorizon is the number of months after the current one shown
// in the cash-flow window.
const DefaultForecastHorizon = 3

// CashFlowForecaster splits a short window of monthly totals into recorded
// and upcoming months.
type CashFlowForecaster struct {
	horizonMonths int
}

// NewCashFlowForecaster returns a forecaster covering the current month and
// the horizonMonths that follow it. A negative horizon is treated as 0.
func NewCashFlowForecaster(horizonMonths int) *CashFlowForecaster {
	return &CashFlowForecaster{horizonMonths: max(0, horizonMonths)}
}

// Forecast sums history per month over the window starting at current.
// Months up to current are actual, later ones projected. When nothing is
// recorded for the current month yet, totalAssets stands in for it. Months
// whose amount is 0 are left out.
func (f *CashFlowForecaster) Forecast(history []model.HoldingRecord, current model.YearMonth, totalAssets model.Money) []model.ForecastPoint {
	sums := make(map[model.YearMonth]model.Money)
	for _, r := range history {
		sums[r.Month] += r.Balance
	}

	points := []model.ForecastPoint{}
	for i := 0; i <= f.horizonMonths; i++ {
		month := current.AddMonths(i)

		amount, recorded := sums[month]
		if !recorded && month == current {
			amount = totalAssets
		}
		if amount == 0 {
			continue
		}

		kind := model.ForecastProjected
		if !month.After(current) {
			kind = model.ForecastActual
		}
		points = append(points, model.ForecastPoint{Month: month, Amount: amount, Type: kind})
	}

	return points
}
