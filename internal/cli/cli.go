// Package cli implements the wealthctl subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// Commands lists every wealthctl subcommand.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&projectCmd{},
	&importCmd{},
	&genkeyCmd{},
}

// Output is where commands write their results. Diagnostics go to stderr.
var Output io.Writer = os.Stdout

// snapshotFlags are shared by every command that reads a snapshot file.
type snapshotFlags struct {
	file   string
	tables string
}

func (s *snapshotFlags) register(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", "", "snapshot JSON file ({latestMonth, latestData, raw, goals}), - for stdin")
	f.StringVar(&s.tables, "tables", os.Getenv("ANALYTICS_TABLES_FILE"), "YAML file overriding the yield and allocation tables")
}

func (s *snapshotFlags) engine() (*analytics.Engine, error) {
	tables, err := config.LoadTables(s.tables)
	if err != nil {
		return nil, err
	}
	return analytics.NewEngine(tables), nil
}

func (s *snapshotFlags) snapshot() (model.Snapshot, error) {
	return readSnapshot(s.file)
}

// readSnapshot loads the snapshot in file, or stdin for "-".
func readSnapshot(file string) (model.Snapshot, error) {
	if file == "" {
		return model.Snapshot{}, errors.New("missing -f <snapshot.json>")
	}

	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return DecodeSnapshot(data)
}

// DecodeSnapshot parses an exported snapshot. Balances that are not numbers
// decode to 0. The latest month is derived from the records when missing.
func DecodeSnapshot(data []byte) (model.Snapshot, error) {
	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return model.Snapshot{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	if snapshot.LatestMonth.IsZero() {
		for _, h := range snapshot.LatestHoldings {
			if h.Month.After(snapshot.LatestMonth) {
				snapshot.LatestMonth = h.Month
			}
		}
	}
	return snapshot, nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(Output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
