package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/testutil"
)

// TestSnapshotService_Snapshot tests loading and caching the analytics snapshot.
//
// WHY: Every dashboard figure is computed from this snapshot. The latest
// records must supersede older months per account, and the cache must not
// serve stale data after a write.
func TestSnapshotService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database is real data, not demo", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db, true)

		// Execute
		loaded, err := svc.Snapshot(ctx)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		if loaded.Demo {
			t.Error("Expected empty database not to trigger demo data")
		}
		if len(loaded.Snapshot.LatestHoldings) != 0 {
			t.Errorf("Expected no holdings, got %d", len(loaded.Snapshot.LatestHoldings))
		}
		if !loaded.Snapshot.LatestMonth.IsZero() {
			t.Errorf("Expected zero latest month, got %s", loaded.Snapshot.LatestMonth)
		}
	})

	t.Run("latest record per account wins", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db, false)

		testutil.CreateHolding(t, db, "2024/01", "現預金", "楽天銀行", 1_000_000)
		testutil.CreateHolding(t, db, "2024/02", "現預金", "楽天銀行", 1_350_000)
		testutil.CreateHolding(t, db, "2024/01", "証券口座", "SBI証券", 3_000_000)
		testutil.CreateGoal(t, db, "資産1000万", 10_000_000)

		// Execute
		loaded, err := svc.Snapshot(ctx)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}

		snapshot := loaded.Snapshot
		if len(snapshot.LatestHoldings) != 2 {
			t.Fatalf("Expected 2 latest holdings, got %d", len(snapshot.LatestHoldings))
		}
		if snapshot.LatestHoldings[0].Balance != 1_350_000 {
			t.Errorf("Expected newest 楽天銀行 balance 1350000, got %d", snapshot.LatestHoldings[0].Balance)
		}
		if snapshot.LatestHoldings[1].Label != "SBI証券" {
			t.Errorf("Expected SBI証券 second, got %s", snapshot.LatestHoldings[1].Label)
		}
		if len(snapshot.HistoricalHoldings) != 3 {
			t.Errorf("Expected 3 history records, got %d", len(snapshot.HistoricalHoldings))
		}
		if snapshot.LatestMonth != model.NewYearMonth(2024, 2) {
			t.Errorf("Expected latest month 2024/02, got %s", snapshot.LatestMonth)
		}
		if len(snapshot.Goals) != 1 {
			t.Errorf("Expected 1 goal, got %d", len(snapshot.Goals))
		}
	})

	t.Run("cached until invalidated", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db, false)

		if _, err := svc.Snapshot(ctx); err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		testutil.CreateHolding(t, db, "2024/02", "現預金", "楽天銀行", 1_350_000)

		// Execute
		cached, err := svc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		svc.Invalidate()
		fresh, err := svc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}

		// Assert
		if len(cached.Snapshot.LatestHoldings) != 0 {
			t.Errorf("Expected cached snapshot to be empty, got %d holdings", len(cached.Snapshot.LatestHoldings))
		}
		if len(fresh.Snapshot.LatestHoldings) != 1 {
			t.Errorf("Expected 1 holding after invalidate, got %d", len(fresh.Snapshot.LatestHoldings))
		}
	})
}

// TestSnapshotService_Fallback tests the demonstration fallback.
//
// WHY: The dashboard must still render when storage is unavailable, but only
// when fallback is enabled, and it must recover once storage is back.
func TestSnapshotService_Fallback(t *testing.T) {
	ctx := context.Background()

	t.Run("serves demo data when loading fails", func(t *testing.T) {
		// Setup with closed database
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db, true)
		db.Close()

		// Execute
		loaded, err := svc.Snapshot(ctx)

		// Assert
		if err != nil {
			t.Fatalf("Snapshot() returned unexpected error: %v", err)
		}
		if !loaded.Demo {
			t.Error("Expected demo snapshot")
		}
		if len(loaded.Snapshot.LatestHoldings) != len(service.DemoSnapshot().LatestHoldings) {
			t.Errorf("Expected demo holdings, got %d", len(loaded.Snapshot.LatestHoldings))
		}
	})

	t.Run("returns error when fallback is disabled", func(t *testing.T) {
		// Setup with closed database
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db, false)
		db.Close()

		// Execute
		_, err := svc.Snapshot(ctx)

		// Assert
		if !errors.Is(err, apperrors.ErrFailedToLoadSnapshot) {
			t.Errorf("Expected ErrFailedToLoadSnapshot, got %v", err)
		}
	})
}

func TestDemoSnapshot(t *testing.T) {
	snapshot := service.DemoSnapshot()

	var total model.Money
	for _, h := range snapshot.LatestHoldings {
		total += h.Balance
	}

	if total != 9_530_000 {
		t.Errorf("Expected demo total 9530000, got %d", total)
	}
	if snapshot.HistoricalHoldings == nil {
		t.Error("Expected empty, non-nil history")
	}
	if len(snapshot.Goals) != 2 || snapshot.Goals[0].Target != 10_000_000 {
		t.Errorf("Expected main goal of 10000000, got %+v", snapshot.Goals)
	}
}
