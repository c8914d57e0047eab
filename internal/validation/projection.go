package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// Projection inputs are collected here and nowhere else. Out of range values
// are clamped, then snapped to the step of the dashboard's sliders.
const (
	DefaultMonthlySavings = 100_000
	MaxMonthlySavings     = 1_000_000
	MonthlySavingsStep    = 10_000

	DefaultAnnualReturnPercent = 5.0
	MaxAnnualReturnPercent     = 20.0
	AnnualReturnStep           = 0.5

	DefaultHorizonYears = 20
	MinHorizonYears     = 1
	MaxHorizonYears     = 50
)

// ParseProjectionParams turns the raw query values into one consistent
// parameter set. Empty values take their defaults; values that are not
// finite numbers are reported as field errors. annualReturn is in percent.
func ParseProjectionParams(monthlySavings, annualReturn, years string) (model.ProjectionParams, error) {
	errors := make(map[string]string)

	savings, ok := parseNumber(monthlySavings, DefaultMonthlySavings)
	if !ok {
		errors["monthlySavings"] = "monthlySavings must be a number"
	}
	rate, ok := parseNumber(annualReturn, DefaultAnnualReturnPercent)
	if !ok {
		errors["annualReturn"] = "annualReturn must be a number"
	}
	horizon, ok := parseNumber(years, DefaultHorizonYears)
	if !ok {
		errors["years"] = "years must be a number"
	}

	if err := fieldErrors(errors); err != nil {
		return model.ProjectionParams{}, err
	}

	savings = snap(clamp(savings, 0, MaxMonthlySavings), MonthlySavingsStep)
	rate = snap(clamp(rate, 0, MaxAnnualReturnPercent), AnnualReturnStep)
	horizon = clamp(math.Round(horizon), MinHorizonYears, MaxHorizonYears)

	return model.ProjectionParams{
		MonthlySavings:   model.Money(savings),
		AnnualReturnRate: rate / 100,
		HorizonYears:     int(horizon),
	}, nil
}

func parseNumber(raw string, fallback float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}
