package analytics

import "github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"

// guardedDenominator is the portfolio total as a divisor, never below 1.
func guardedDenominator(total model.Money) float64 {
	if total < 1 {
		return 1
	}
	return float64(total)
}
