package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/encryption"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/logger"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
)

type importCmd struct {
	file    string
	dbPath  string
	memoKey string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "load a snapshot file into the database" }
func (*importCmd) Usage() string {
	return `wealthctl import -f <snapshot.json> [-db <path>] [-memo-key <key>]

  Stores every record and goal of the snapshot in one transaction. The
  history (raw) is imported when present, otherwise the latest records.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "snapshot JSON file, - for stdin")
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/wealth_dashboard.db"
	}
	f.StringVar(&c.dbPath, "db", dbPath, "SQLite database path")
	f.StringVar(&c.memoKey, "memo-key", os.Getenv("MEMO_KEY"), "fernet key encrypting memos")
}

func (c *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := logger.NewWithWriter(logger.Config{Level: "info", Pretty: true}, os.Stderr)

	snapshot, err := readSnapshot(c.file)
	if err != nil {
		return fail(err)
	}

	cipher, err := encryption.NewMemoCipher(c.memoKey)
	if err != nil {
		return fail(err)
	}

	db, err := database.Open(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer db.Close()

	if _, err := database.Migrate(ctx, db); err != nil {
		return fail(err)
	}

	holdingRepo := repository.NewHoldingRepository(db, cipher)
	goalRepo := repository.NewGoalRepository(db)
	snapshots := service.NewSnapshotService(holdingRepo, goalRepo, false, log)
	holdings := service.NewHoldingService(db, holdingRepo, goalRepo, snapshots, log)

	result, err := holdings.Import(ctx, snapshot)
	if err != nil {
		return fail(err)
	}

	fmt.Fprintf(Output, "imported %d holdings and %d goals into %s\n", result.Holdings, result.Goals, c.dbPath)
	return subcommands.ExitSuccess
}
