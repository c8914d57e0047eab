package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// HoldingBuilder provides a fluent interface for creating test holding records.
// Memos are stored as plain text, so read the rows back with a repository
// that has no cipher.
//
// Example usage:
//
//	// Simple creation with defaults
//	h := testutil.NewHolding().Build(t, db)
//
//	// Customized record
//	h := testutil.NewHolding().
//	    WithAccount("証券口座", "SBI証券").
//	    WithMonth("2024/02").
//	    WithBalance(3_250_000).
//	    Build(t, db)
type HoldingBuilder struct {
	ID        string
	Month     model.YearMonth
	Category  string
	Label     string
	Balance   model.Money
	Memo      string
	CreatedAt time.Time
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:        MakeID(),
		Month:     model.NewYearMonth(2024, 1),
		Category:  "現預金",
		Label:     MakeLabel("Bank"),
		Balance:   100_000,
		CreatedAt: time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *HoldingBuilder) WithID(id string) *HoldingBuilder {
	b.ID = id
	return b
}

// WithAccount sets the category and label.
func (b *HoldingBuilder) WithAccount(category, label string) *HoldingBuilder {
	b.Category = category
	b.Label = label
	return b
}

// WithMonth sets the month from a "YYYY/MM" string. Panics on malformed input.
func (b *HoldingBuilder) WithMonth(month string) *HoldingBuilder {
	b.Month = model.MustParseYearMonth(month)
	return b
}

// WithBalance sets the balance.
func (b *HoldingBuilder) WithBalance(balance model.Money) *HoldingBuilder {
	b.Balance = balance
	return b
}

// WithMemo sets a plain text memo.
func (b *HoldingBuilder) WithMemo(memo string) *HoldingBuilder {
	b.Memo = memo
	return b
}

// Build creates the holding record in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.HoldingRecord {
	t.Helper()

	query := `
		INSERT INTO holding (id, month, category, label, balance, memo, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.Month.String(),
		b.Category,
		b.Label,
		int64(b.Balance),
		b.Memo,
		b.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.HoldingRecord{
		ID:        b.ID,
		Month:     b.Month,
		Category:  b.Category,
		Label:     b.Label,
		Balance:   b.Balance,
		Memo:      b.Memo,
		CreatedAt: b.CreatedAt,
	}
}

// GoalBuilder provides a fluent interface for creating test goals.
//
// Example usage:
//
//	goal := testutil.NewGoal().WithName("資産1000万").WithTarget(10_000_000).Build(t, db)
type GoalBuilder struct {
	ID       string
	Name     string
	Category string
	Target   model.Money
	Deadline model.Date
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		ID:       MakeID(),
		Name:     MakeLabel("Goal"),
		Category: "全体",
		Target:   1_000_000,
		Deadline: model.NewDate(2030, time.December, 31),
	}
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.Name = name
	return b
}

// WithTarget sets the target amount.
func (b *GoalBuilder) WithTarget(target model.Money) *GoalBuilder {
	b.Target = target
	return b
}

// WithoutDeadline clears the deadline.
func (b *GoalBuilder) WithoutDeadline() *GoalBuilder {
	b.Deadline = model.Date{}
	return b
}

// Build creates the goal in the database and returns it.
func (b *GoalBuilder) Build(t *testing.T, db *sql.DB) model.Goal {
	t.Helper()

	query := `
		INSERT INTO goal (id, name, category, target, deadline)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Category, int64(b.Target), b.Deadline.String())
	if err != nil {
		t.Fatalf("Failed to create test goal: %v", err)
	}

	return model.Goal{
		ID:       b.ID,
		Name:     b.Name,
		Category: b.Category,
		Target:   b.Target,
		Deadline: b.Deadline,
	}
}

// Convenience functions

// CreateHolding records balance for category/label in month.
//
// Example usage:
//
//	testutil.CreateHolding(t, db, "2024/02", "現預金", "楽天銀行", 1_350_000)
func CreateHolding(t *testing.T, db *sql.DB, month, category, label string, balance model.Money) model.HoldingRecord {
	t.Helper()
	return NewHolding().WithMonth(month).WithAccount(category, label).WithBalance(balance).Build(t, db)
}

// CreateGoal creates a goal with the given name and target.
func CreateGoal(t *testing.T, db *sql.DB, name string, target model.Money) model.Goal {
	t.Helper()
	return NewGoal().WithName(name).WithTarget(target).Build(t, db)
}
