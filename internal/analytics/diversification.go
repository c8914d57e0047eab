package analytics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// Scoring constants.
const (
	baseScore = 50

	breadthMinCategories = 4
	breadthBonus         = 20

	balancedMaxWeight = 0.4
	balancedBonus     = 30

	concentratedMaxWeight = 0.7
	concentratedPenalty   = 30

	idealScoreAbove = 80
	fineScoreAbove  = 60

	goodLevelAbove = 75
	fairLevelAbove = 50
)

// Advice texts returned with a diversification score.
const (
	AdviceCollectingData    = "collecting data"
	AdviceIdealSpread       = "ideal spread"
	AdviceSlightSkew        = "mostly fine, slight skew"
	AdviceConcentrationRisk = "concentration risk"
)

// ScoreDiversification rates the concentration risk of a portfolio on a
// 0..100 scale from the number of categories and the weight of the largest.
// A portfolio with no value has no categories and scores 0.
func ScoreDiversification(totals []model.CategoryTotal, total model.Money) model.HealthReport {
	n := len(totals)
	if total == 0 {
		n = 0
	}
	if n == 0 {
		return model.HealthReport{Score: 0, Advice: AdviceCollectingData, Level: healthLevel(0)}
	}

	denom := guardedDenominator(total)
	weights := make([]float64, n)
	for i, t := range totals {
		weights[i] = float64(t.Balance) / denom
	}
	maxWeight := floats.Max(weights)

	score := baseScore
	if n >= breadthMinCategories {
		score += breadthBonus
	}
	if maxWeight < balancedMaxWeight {
		score += balancedBonus
	}
	if maxWeight > concentratedMaxWeight {
		score -= concentratedPenalty
	}
	score = max(0, min(100, score))

	return model.HealthReport{Score: score, Advice: advice(score), Level: healthLevel(score)}
}

func advice(score int) string {
	switch {
	case score > idealScoreAbove:
		return AdviceIdealSpread
	case score > fineScoreAbove:
		return AdviceSlightSkew
	default:
		return AdviceConcentrationRisk
	}
}

func healthLevel(score int) model.HealthLevel {
	switch {
	case score > goodLevelAbove:
		return model.HealthGood
	case score > fairLevelAbove:
		return model.HealthFair
	default:
		return model.HealthPoor
	}
}
