package analytics

import (
	"math"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// TrackGoals reports how much of each goal's target the portfolio total
// already covers, as a whole percentage between 0 and 100.
func TrackGoals(goals []model.Goal, total model.Money) []model.GoalProgress {
	progress := make([]model.GoalProgress, len(goals))
	for i, g := range goals {
		progress[i] = model.GoalProgress{Goal: g, Percent: goalPercent(total, g.Target)}
	}
	return progress
}

func goalPercent(total, target model.Money) int {
	if target <= 0 {
		if total > 0 {
			return 100
		}
		return 0
	}
	pct := math.Floor(float64(total) / float64(target) * 100)
	return int(max(0, min(100, pct)))
}
