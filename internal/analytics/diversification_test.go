package analytics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

func TestScoreDiversification(t *testing.T) {
	tests := []struct {
		name   string
		totals []model.CategoryTotal
		score  int
		advice string
		level  model.HealthLevel
	}{
		{
			name:   "empty portfolio",
			totals: nil,
			score:  0,
			advice: AdviceCollectingData,
			level:  model.HealthPoor,
		},
		{
			name:   "two categories, one dominant",
			totals: []model.CategoryTotal{ct("Cash", 1000), ct("Stocks", 4000)},
			score:  20, // 50 - 30
			advice: AdviceConcentrationRisk,
			level:  model.HealthPoor,
		},
		{
			name:   "four equal categories",
			totals: []model.CategoryTotal{ct("A", 250), ct("B", 250), ct("C", 250), ct("D", 250)},
			score:  100, // 50 + 20 + 30
			advice: AdviceIdealSpread,
			level:  model.HealthGood,
		},
		{
			name:   "four categories, largest at half",
			totals: []model.CategoryTotal{ct("A", 500), ct("B", 200), ct("C", 200), ct("D", 100)},
			score:  70, // 50 + 20
			advice: AdviceSlightSkew,
			level:  model.HealthFair,
		},
		{
			name:   "three balanced categories",
			totals: []model.CategoryTotal{ct("A", 340), ct("B", 330), ct("C", 330)},
			score:  80, // 50 + 30
			advice: AdviceSlightSkew,
			level:  model.HealthGood,
		},
		{
			name:   "single category",
			totals: []model.CategoryTotal{ct("A", 1)},
			score:  20,
			advice: AdviceConcentrationRisk,
			level:  model.HealthPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := totalOf(tt.totals)

			report := ScoreDiversification(tt.totals, total)

			assert.Equal(t, tt.score, report.Score)
			assert.Equal(t, tt.advice, report.Advice)
			assert.Equal(t, tt.level, report.Level)
		})
	}
}

func TestScoreDiversification_ZeroTotalCountsNoCategories(t *testing.T) {
	totals := []model.CategoryTotal{ct("A", 0), ct("B", 0), ct("C", 0), ct("D", 0)}

	report := ScoreDiversification(totals, 0)

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, AdviceCollectingData, report.Advice)
}

func TestScoreDiversification_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 500; run++ {
		totals := make([]model.CategoryTotal, rng.Intn(8))
		for i := range totals {
			totals[i] = model.CategoryTotal{Category: string(rune('A' + i)), Balance: model.Money(rng.Int63n(10_000_000))}
		}
		total := totalOf(totals)

		score := ScoreDiversification(totals, total).Score

		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestScoreDiversification_MoreCategoriesNeverLowerScore(t *testing.T) {
	// Each case keeps the largest weight fixed while growing from 3 to 5 categories.
	cases := [][2][]model.CategoryTotal{
		{
			{ct("A", 500), ct("B", 250), ct("C", 250)},
			{ct("A", 500), ct("B", 150), ct("C", 150), ct("D", 100), ct("E", 100)},
		},
		{
			{ct("A", 800), ct("B", 100), ct("C", 100)},
			{ct("A", 800), ct("B", 50), ct("C", 50), ct("D", 50), ct("E", 50)},
		},
		{
			{ct("A", 350), ct("B", 350), ct("C", 300)},
			{ct("A", 350), ct("B", 200), ct("C", 150), ct("D", 150), ct("E", 150)},
		},
	}

	for _, c := range cases {
		before := totalOf(c[0])
		after := totalOf(c[1])
		assert.GreaterOrEqual(t,
			ScoreDiversification(c[1], after).Score,
			ScoreDiversification(c[0], before).Score,
		)
	}
}

func ct(category string, balance model.Money) model.CategoryTotal {
	return model.CategoryTotal{Category: category, Balance: balance}
}

func totalOf(totals []model.CategoryTotal) model.Money {
	var total model.Money
	for _, t := range totals {
		total += t.Balance
	}
	return total
}
