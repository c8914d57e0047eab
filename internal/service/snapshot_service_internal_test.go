package service

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // Test Package

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
)

// newSnapshotServiceForTest builds a SnapshotService over a migrated in-memory
// database. testutil cannot be used here since it imports this package.
func newSnapshotServiceForTest(t *testing.T) (*SnapshotService, *repository.HoldingRepository) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	holdingRepo := repository.NewHoldingRepository(db, nil)
	svc := NewSnapshotService(holdingRepo, repository.NewGoalRepository(db), false, zerolog.Nop())
	return svc, holdingRepo
}

func insertHolding(t *testing.T, repo *repository.HoldingRepository, label string) {
	t.Helper()

	h := model.HoldingRecord{
		ID:        label,
		Month:     model.NewYearMonth(2024, time.February),
		Category:  "現預金",
		Label:     label,
		Balance:   1_350_000,
		CreatedAt: time.Now(),
	}
	if err := repo.InsertHolding(context.Background(), &h); err != nil {
		t.Fatalf("InsertHolding() error = %v", err)
	}
}

// TestSnapshotService_InvalidateDuringRefresh tests a write that lands while a
// refresh is between reading storage and caching the result.
//
// WHY: The scheduler refreshes concurrently with API writes. If the refresh
// cached what it read before the write, the dashboard would keep showing the
// old figures until the next tick even though the write invalidated the cache.
func TestSnapshotService_InvalidateDuringRefresh(t *testing.T) {
	ctx := context.Background()

	// Setup
	svc, repo := newSnapshotServiceForTest(t)

	gen := svc.currentGeneration()
	before, err := svc.load(ctx)
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	insertHolding(t, repo, "楽天銀行")
	svc.Invalidate()

	// Execute
	stored := svc.store(LoadedSnapshot{Snapshot: before, LoadedAt: time.Now()}, gen)
	loaded, err := svc.Snapshot(ctx)

	// Assert
	if stored {
		t.Error("Expected result read before Invalidate not to be cached")
	}
	if err != nil {
		t.Fatalf("Snapshot() returned unexpected error: %v", err)
	}
	if len(loaded.Snapshot.LatestHoldings) != 1 {
		t.Errorf("Expected 1 holding after invalidation, got %d", len(loaded.Snapshot.LatestHoldings))
	}
}

func TestSnapshotService_RefreshCachesCurrentGeneration(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSnapshotServiceForTest(t)

	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	// Written behind the cache's back, so a cached snapshot must not see it.
	insertHolding(t, repo, "SBI証券")

	loaded, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(loaded.Snapshot.LatestHoldings) != 0 {
		t.Errorf("Expected cached empty snapshot, got %d holdings", len(loaded.Snapshot.LatestHoldings))
	}
}

// TestSnapshotService_ColdCacheSharesLoad tests concurrent reads on an empty cache.
//
// WHY: After a write every open dashboard asks for the snapshot at once. Each
// request running its own set of queries multiplies database load for the
// same result.
func TestSnapshotService_ColdCacheSharesLoad(t *testing.T) {
	ctx := context.Background()

	// Setup
	svc, repo := newSnapshotServiceForTest(t)
	insertHolding(t, repo, "楽天銀行")

	var loads atomic.Int32
	svc.now = func() time.Time {
		loads.Add(1)
		return time.Now()
	}

	// Execute
	const readers = 16
	var wg sync.WaitGroup
	results := make([]LoadedSnapshot, readers)
	errs := make([]error, readers)
	for i := range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = svc.Snapshot(ctx)
		}()
	}
	wg.Wait()

	// Assert
	if got := loads.Load(); got != 1 {
		t.Errorf("Expected 1 load for %d concurrent readers, got %d", readers, got)
	}
	for i := range readers {
		if errs[i] != nil {
			t.Fatalf("Snapshot() reader %d error = %v", i, errs[i])
		}
		if len(results[i].Snapshot.LatestHoldings) != 1 {
			t.Errorf("reader %d got %d holdings, want 1", i, len(results[i].Snapshot.LatestHoldings))
		}
	}
}
