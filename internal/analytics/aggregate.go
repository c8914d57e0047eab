package analytics

import "github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"

// Aggregate sums the latest snapshot per category. Categories are returned in
// the order they first appear in records, and the grand total always equals
// the sum of the category balances.
func Aggregate(records []model.HoldingRecord) ([]model.CategoryTotal, model.Money) {
	totals := []model.CategoryTotal{}
	index := make(map[string]int)
	var total model.Money

	for _, r := range records {
		i, seen := index[r.Category]
		if !seen {
			i = len(totals)
			index[r.Category] = i
			totals = append(totals, model.CategoryTotal{Category: r.Category})
		}
		totals[i].Balance += r.Balance
		total += r.Balance
	}

	return totals, total
}
