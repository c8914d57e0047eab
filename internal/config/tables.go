package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
)

// tablesFile is the YAML layout of ANALYTICS_TABLES_FILE:
//
//	yields:
//	  現預金: 0.001
//	  証券口座: 0.02
//	targets:
//	  現預金: 0.2
//	  証券口座: 0.8
//	volatility: 0.15
type tablesFile struct {
	Yields     map[string]float64 `yaml:"yields"`
	Targets    map[string]float64 `yaml:"targets"`
	Volatility *float64           `yaml:"volatility"`
}

// LoadTables reads the analytics tables from path. An empty path returns the
// built-in tables. Sections missing from the file keep their built-in values.
func LoadTables(path string) (analytics.Tables, error) {
	tables := analytics.DefaultTables()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return analytics.Tables{}, fmt.Errorf("failed to read analytics tables: %w", err)
	}

	tables, err = ParseTables(data)
	if err != nil {
		return analytics.Tables{}, fmt.Errorf("invalid analytics tables %s: %w", path, err)
	}
	return tables, nil
}

// ParseTables decodes a YAML tables document on top of the built-in tables.
func ParseTables(data []byte) (analytics.Tables, error) {
	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return analytics.Tables{}, err
	}

	tables := analytics.DefaultTables()
	if file.Yields != nil {
		tables.Yields = analytics.YieldAssumptions(file.Yields)
	}
	if file.Targets != nil {
		tables.Targets = analytics.AllocationTargets(file.Targets)
	}
	if file.Volatility != nil {
		tables.Volatility = *file.Volatility
	}

	if err := ValidateTables(tables); err != nil {
		return analytics.Tables{}, err
	}
	return tables, nil
}

// ValidateTables rejects negative yields, weights outside 0..1 and a
// negative volatility. Every problem is reported, in category order.
func ValidateTables(tables analytics.Tables) error {
	var errs []error

	for _, category := range sortedKeys(tables.Yields) {
		if y := tables.Yields[category]; y < 0 {
			errs = append(errs, fmt.Errorf("yield for %s is negative: %v", category, y))
		}
	}
	for _, category := range sortedKeys(tables.Targets) {
		if w := tables.Targets[category]; w < 0 || w > 1 {
			errs = append(errs, fmt.Errorf("target for %s must be between 0 and 1: %v", category, w))
		}
	}
	if tables.Volatility < 0 {
		errs = append(errs, fmt.Errorf("volatility is negative: %v", tables.Volatility))
	}

	return errors.Join(errs...)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
