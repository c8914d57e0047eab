package service

import "github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"

// DemoSnapshot is the demonstration dataset shown when the real data cannot
// be loaded. It has no history, so the cash-flow window falls back to the total.
func DemoSnapshot() model.Snapshot {
	month := model.NewYearMonth(2024, 2)
	holding := func(category, label string, balance model.Money) model.HoldingRecord {
		return model.HoldingRecord{Month: month, Category: category, Label: label, Balance: balance}
	}

	return model.Snapshot{
		LatestMonth: month,
		LatestHoldings: []model.HoldingRecord{
			holding("現預金", "楽天銀行", 1_350_000),
			holding("現預金", "三菱UFJ", 500_000),
			holding("証券口座", "SBI証券", 3_250_000),
			holding("証券口座", "マネックス", 1_400_000),
			holding("仮想通貨", "ビットコイン", 920_000),
			holding("保険・年金", "積立生保", 1_100_000),
			holding("保険・年金", "小規模共済", 1_010_000),
		},
		HistoricalHoldings: []model.HoldingRecord{},
		Goals: []model.Goal{
			{Name: "資産1000万", Category: "全体", Target: 10_000_000, Deadline: model.NewDate(2025, 12, 31)},
			{Name: "新車貯金", Category: "貯蓄", Target: 3_000_000, Deadline: model.NewDate(2024, 6, 30)},
		},
	}
}
