package analytics

import (
	"math"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// DefaultVolatility is the annual volatility of the band model.
const DefaultVolatility = 0.15

// bandZScore is the one-sided z-score of the 90th percentile of a standard
// normal distribution, rounded to two digits.
const bandZScore = 1.28

// GrowthProjector simulates the portfolio value year by year under a fixed
// monthly contribution, an expected annual return and a volatility.
type GrowthProjector struct {
	volatility float64
}

// NewGrowthProjector returns a projector for the given annual volatility.
func NewGrowthProjector(volatility float64) *GrowthProjector {
	return &GrowthProjector{volatility: volatility}
}

// Project returns one point per year offset from 0 to params.HorizonYears
// inclusive.
//
// The median is the future value of totalAssets plus an ordinary annuity of
// monthlySavings*12 per year compounded at the annual return rate.
//
// The optimistic and pessimistic bands apply a log-normal shock at +/-1.28
// standard deviations to the running total of lump sum plus contributions
// made so far, without compounding. The bands are therefore not built around
// the median: with a positive return and heavy contributions the median can
// fall outside them.
func (p *GrowthProjector) Project(totalAssets model.Money, params model.ProjectionParams) []model.ProjectionPoint {
	r := params.AnnualReturnRate
	vol := p.volatility
	present := float64(totalAssets)
	annualSavings := float64(params.MonthlySavings) * 12

	points := make([]model.ProjectionPoint, 0, max(0, params.HorizonYears+1))
	for year := 0; year <= params.HorizonYears; year++ {
		t := float64(year)
		growth := math.Pow(1+r, t)

		base := present * growth
		var contrib float64
		if r == 0 {
			contrib = annualSavings * t
		} else {
			contrib = annualSavings * (growth - 1) / r
		}

		running := present + annualSavings*t
		drift := (r - 0.5*vol*vol) * t
		spread := vol * math.Sqrt(t)

		points = append(points, model.ProjectionPoint{
			YearOffset:  year,
			Median:      model.Money(math.Floor(base + contrib)),
			Optimistic:  model.Money(math.Floor(running * math.Exp(drift+spread*bandZScore))),
			Pessimistic: model.Money(math.Floor(running * math.Exp(drift-spread*bandZScore))),
		})
	}

	return points
}
