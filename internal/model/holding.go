package model

import "time"

// HoldingRecord is the balance of one account (label) within a category for
// one month. Records are never edited; a newer month for the same
// (category, label) supersedes the older one in the latest snapshot.
type HoldingRecord struct {
	ID        string    `json:"id,omitempty"`
	Month     YearMonth `json:"month"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Balance   Money     `json:"balance"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Goal is a savings target tracked against the portfolio total.
type Goal struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Target   Money  `json:"target"`
	Deadline Date   `json:"deadline"`
}

// Snapshot is everything the analytics engine needs for one dashboard render.
// The JSON names match the payload of the dashboard's upstream data source
// so exported snapshots can be fed back in unchanged.
type Snapshot struct {
	LatestMonth        YearMonth       `json:"latestMonth"`
	LatestHoldings     []HoldingRecord `json:"latestData"`
	HistoricalHoldings []HoldingRecord `json:"raw"`
	Goals              []Goal          `json:"goals"`
}

// HistoryFilter narrows the holding history. Zero months and an empty
// category list do not filter.
type HistoryFilter struct {
	From       YearMonth
	To         YearMonth
	Categories []string
}
