package model

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in the smallest unit of the reporting currency.
// Sums of Money are exact, which keeps category totals and the grand total
// in agreement.
type Money int64

// MaxMoney is the largest magnitude a single balance may have. Sums of up to
// 9000 such balances still fit in an int64.
const MaxMoney Money = 1_000_000_000_000_000

var maxMoneyDecimal = decimal.NewFromInt(int64(MaxMoney))

// UnmarshalJSON decodes numbers and numeric strings. Anything else (null,
// booleans, "1,000", objects) decodes to 0 instead of failing the payload, so
// a single bad balance never drops the rest of a snapshot. Values beyond
// ±MaxMoney also decode to 0. Fractions are truncated toward zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	*m = 0

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	if raw[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		raw = strings.TrimSpace(str)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	d = d.Truncate(0)
	if d.Abs().GreaterThan(maxMoneyDecimal) {
		return nil
	}
	*m = Money(d.IntPart())
	return nil
}

// Decimal returns m as a decimal for exact arithmetic.
func (m Money) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(m)) }

// Display formats m in currency, e.g. "¥9,530,000" for JPY.
func (m Money) Display(currency string) string {
	return money.New(int64(m), currency).Display()
}

var _ json.Unmarshaler = (*Money)(nil)
