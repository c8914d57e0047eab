package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/validation"
)

type projectCmd struct {
	snapshotFlags
	savings string
	ret     string
	years   string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "print the growth projection of a snapshot file" }
func (*projectCmd) Usage() string {
	return `wealthctl project -f <snapshot.json> [-savings N] [-return P] [-years Y] [-tables <tables.yaml>]

  Projects the snapshot total with monthly savings N at P percent a year
  for Y years. Values are clamped to the dashboard ranges.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.savings, "savings", "", "monthly savings (default 100000)")
	f.StringVar(&c.ret, "return", "", "expected annual return in percent (default 5)")
	f.StringVar(&c.years, "years", "", "horizon in years (default 20)")
}

func (c *projectCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params, err := validation.ParseProjectionParams(c.savings, c.ret, c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	engine, err := c.engine()
	if err != nil {
		return fail(err)
	}
	snapshot, err := c.snapshot()
	if err != nil {
		return fail(err)
	}

	_, total := analytics.Aggregate(snapshot.LatestHoldings)
	year := time.Now().Year()

	points := engine.Project(total, params)
	rows := make([]service.ProjectionRow, len(points))
	for i, p := range points {
		rows[i] = service.ProjectionRow{Year: year + p.YearOffset, ProjectionPoint: p}
	}

	result := service.ProjectionResult{Params: params, TotalAssets: total, Rows: rows}
	if err := writeJSON(result); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
