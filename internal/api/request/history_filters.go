package request

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// ParseHistoryFilters extracts and validates holding history filters from query parameters.
//
// All parameters are optional:
//   - from/to: inclusive month bounds (YYYY/MM or YYYY-MM)
//   - category: comma-separated category names, matched exactly
//
// Returns an error if a month cannot be parsed or from is after to.
func ParseHistoryFilters(fromParam, toParam, categoriesParam string) (*model.HistoryFilter, error) {
	filter := &model.HistoryFilter{}

	if fromParam != "" {
		from, err := model.ParseYearMonth(fromParam)
		if err != nil {
			return nil, fmt.Errorf("invalid from: %w", err)
		}
		filter.From = from
	}

	if toParam != "" {
		to, err := model.ParseYearMonth(toParam)
		if err != nil {
			return nil, fmt.Errorf("invalid to: %w", err)
		}
		filter.To = to
	}

	if !filter.From.IsZero() && !filter.To.IsZero() && filter.From.After(filter.To) {
		return nil, fmt.Errorf("invalid range: from %s is after to %s", filter.From, filter.To)
	}

	if categoriesParam != "" {
		for _, category := range strings.Split(categoriesParam, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filter.Categories = append(filter.Categories, category)
			}
		}
	}

	return filter, nil
}
