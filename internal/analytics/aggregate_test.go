package analytics

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

func holding(category, label string, balance model.Money) model.HoldingRecord {
	return model.HoldingRecord{
		Month:    model.MustParseYearMonth("2024/02"),
		Category: category,
		Label:    label,
		Balance:  balance,
	}
}

func TestAggregate_Empty(t *testing.T) {
	totals, total := Aggregate(nil)

	assert.NotNil(t, totals)
	assert.Empty(t, totals)
	assert.Equal(t, model.Money(0), total)
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	records := []model.HoldingRecord{
		holding("Cash", "Bank A", 1000),
		holding("Stocks", "Broker", 4000),
		holding("Cash", "Bank B", 500),
	}

	totals, total := Aggregate(records)

	assert.Equal(t, []model.CategoryTotal{
		{Category: "Cash", Balance: 1500},
		{Category: "Stocks", Balance: 4000},
	}, totals)
	assert.Equal(t, model.Money(5500), total)
}

func TestAggregate_Conservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Cash", "Stocks", "Crypto", "Insurance", "Other"}

	for run := 0; run < 200; run++ {
		n := rng.Intn(30)
		records := make([]model.HoldingRecord, n)
		for i := range records {
			records[i] = holding(categories[rng.Intn(len(categories))], "acc", model.Money(rng.Int63n(1_000_000_000)))
		}

		totals, total := Aggregate(records)

		var sum model.Money
		for _, ct := range totals {
			sum += ct.Balance
		}
		require.Equal(t, total, sum, "run %d", run)
	}
}

func TestAggregate_CoercedBalances(t *testing.T) {
	payload := `[
		{"month":"2024/02","category":"Cash","label":"A","balance":"abc"},
		{"month":"2024/02","category":"Cash","label":"B","balance":null},
		{"month":"2024/02","category":"Cash","label":"C"},
		{"month":"2024/02","category":"Stocks","label":"D","balance":"1200"},
		{"month":"2024/02","category":"Stocks","label":"E","balance":800}
	]`
	var records []model.HoldingRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &records))

	totals, total := Aggregate(records)

	assert.Equal(t, []model.CategoryTotal{
		{Category: "Cash", Balance: 0},
		{Category: "Stocks", Balance: 2000},
	}, totals)
	assert.Equal(t, model.Money(2000), total)
}
