package analytics

import (
	"math"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// AllocationTargets maps a category to its target share of the portfolio (0..1).
// The weights need not sum to 1; categories without a target aim for 0.
type AllocationTargets map[string]float64

// RebalanceTolerance is the deviation, in percentage points, under which a
// category counts as on target.
const RebalanceTolerance = 3.0

// RebalanceAnalyzer compares the current allocation with fixed targets.
type RebalanceAnalyzer struct {
	targets AllocationTargets
}

// NewRebalanceAnalyzer copies targets; later changes to the map are not seen.
func NewRebalanceAnalyzer(targets AllocationTargets) *RebalanceAnalyzer {
	copied := make(AllocationTargets, len(targets))
	for category, w := range targets {
		copied[category] = w
	}
	return &RebalanceAnalyzer{targets: copied}
}

// Analyze returns one entry per category in totals, in the same order, and the
// sum of the shortfalls (positive DiffAmount) across all of them. Surpluses
// are reported per category but not netted against shortfalls.
func (a *RebalanceAnalyzer) Analyze(totals []model.CategoryTotal, total model.Money) model.RebalanceReport {
	denom := guardedDenominator(total)
	entries := make([]model.RebalanceEntry, 0, len(totals))
	var shortfall model.Money

	for _, t := range totals {
		current := float64(t.Balance) / denom
		target := a.targets[t.Category]
		diffPP := (current - target) * 100
		diffAmount := model.Money(math.Round(target*float64(total) - float64(t.Balance)))

		entries = append(entries, model.RebalanceEntry{
			Category:          t.Category,
			CurrentWeight:     current,
			TargetWeight:      target,
			DiffPercentPoints: diffPP,
			DiffAmount:        diffAmount,
			Status:            classifyDeviation(diffPP),
		})

		if diffAmount > 0 {
			shortfall += diffAmount
		}
	}

	return model.RebalanceReport{Entries: entries, TotalShortfall: shortfall}
}

func classifyDeviation(diffPercentPoints float64) model.RebalanceStatus {
	switch {
	case math.Abs(diffPercentPoints) < RebalanceTolerance:
		return model.RebalancePerfect
	case diffPercentPoints > 0:
		return model.RebalanceOver
	default:
		return model.RebalanceUnder
	}
}
