package request

import (
	"testing"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

func TestParseHistoryFilters(t *testing.T) {
	t.Run("no parameters means no filtering", func(t *testing.T) {
		filter, err := ParseHistoryFilters("", "", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !filter.From.IsZero() || !filter.To.IsZero() {
			t.Errorf("Expected zero bounds, got %v - %v", filter.From, filter.To)
		}
		if len(filter.Categories) != 0 {
			t.Errorf("Expected no categories, got %v", filter.Categories)
		}
	})

	t.Run("month bounds in both formats", func(t *testing.T) {
		filter, err := ParseHistoryFilters("2023/09", "2024-02", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if filter.From != model.NewYearMonth(2023, 9) {
			t.Errorf("Expected from 2023/09, got %v", filter.From)
		}
		if filter.To != model.NewYearMonth(2024, 2) {
			t.Errorf("Expected to 2024/02, got %v", filter.To)
		}
	})

	t.Run("single month range is allowed", func(t *testing.T) {
		if _, err := ParseHistoryFilters("2024/02", "2024/02", ""); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("categories are trimmed and empty entries dropped", func(t *testing.T) {
		filter, err := ParseHistoryFilters("", "", " 現預金 ,,証券口座")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		expected := []string{"現預金", "証券口座"}
		if len(filter.Categories) != len(expected) {
			t.Fatalf("Expected %d categories, got %v", len(expected), filter.Categories)
		}
		for i, category := range filter.Categories {
			if category != expected[i] {
				t.Errorf("Expected category '%s' at index %d, got '%s'", expected[i], i, category)
			}
		}
	})

	t.Run("invalid from returns error", func(t *testing.T) {
		if _, err := ParseHistoryFilters("2024/13", "", ""); err == nil {
			t.Error("Expected error for month 13, got nil")
		}
	})

	t.Run("invalid to returns error", func(t *testing.T) {
		if _, err := ParseHistoryFilters("", "yesterday", ""); err == nil {
			t.Error("Expected error for invalid to, got nil")
		}
	})

	t.Run("reversed range returns error", func(t *testing.T) {
		if _, err := ParseHistoryFilters("2024/03", "2024/01", ""); err == nil {
			t.Error("Expected error for reversed range, got nil")
		}
	})
}
