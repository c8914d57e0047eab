package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearMonth identifies a calendar month. Holding balances are recorded once
// per month, so this is the granularity of every dated record in the system.
type YearMonth struct {
	Year  int
	Month time.Month
}

// NewYearMonth returns a normalized YearMonth (month 13 rolls into the next year).
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "2024/02", "2024-02" or "2024/2".
func ParseYearMonth(str string) (YearMonth, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(str), func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) != 2 {
		return YearMonth{}, fmt.Errorf("invalid month %q: want format YYYY/MM", str)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 || year > 9999 {
		return YearMonth{}, fmt.Errorf("invalid year in month %q", str)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("invalid month number in month %q", str)
	}

	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

// MustParseYearMonth is like ParseYearMonth but panics on error.
func MustParseYearMonth(str string) YearMonth {
	ym, err := ParseYearMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return ym
}

// String formats the month the way the dashboard enters it, e.g. "2024/02".
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d/%02d", ym.Year, int(ym.Month))
}

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool { return ym.Year == 0 && ym.Month == 0 }

// After reports whether ym is strictly later than other.
func (ym YearMonth) After(other YearMonth) bool { return ym.index() > other.index() }

// AddMonths returns the month n months after ym (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(n))
}

func (ym YearMonth) index() int { return ym.Year*12 + int(ym.Month) - 1 }

// MarshalJSON writes the month as a "YYYY/MM" string. The zero value is "".
func (ym YearMonth) MarshalJSON() ([]byte, error) {
	if ym.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(ym.String())
}

// UnmarshalJSON reads a "YYYY/MM" string. An empty string yields the zero value.
func (ym *YearMonth) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if strings.TrimSpace(str) == "" {
		*ym = YearMonth{}
		return nil
	}
	parsed, err := ParseYearMonth(str)
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

var _ json.Marshaler = YearMonth{}
var _ json.Unmarshaler = (*YearMonth)(nil)
