package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

type analyzeCmd struct {
	snapshotFlags
	month string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "print the dashboard figures of a snapshot file" }
func (*analyzeCmd) Usage() string {
	return `wealthctl analyze -f <snapshot.json> [-month YYYY/MM] [-tables <tables.yaml>]

  Prints totals, diversification, income, rebalance, goals and the
  cash-flow window as JSON.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.month, "month", "", "current month anchoring the cash-flow window (defaults to this month)")
}

func (c *analyzeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current := model.YearMonthOf(time.Now())
	if c.month != "" {
		month, err := model.ParseYearMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		current = month
	}

	engine, err := c.engine()
	if err != nil {
		return fail(err)
	}
	snapshot, err := c.snapshot()
	if err != nil {
		return fail(err)
	}

	if err := writeJSON(engine.Dashboard(snapshot, current)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
