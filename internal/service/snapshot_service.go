package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
)

// LoadedSnapshot is a snapshot together with where it came from.
type LoadedSnapshot struct {
	Snapshot model.Snapshot
	// Demo is true when the demonstration dataset stands in for real data.
	Demo     bool
	LoadedAt time.Time
}

// SnapshotService assembles the analytics snapshot from storage and caches it
// until the next refresh or write.
//
// When loading fails and demo fallback is enabled, the demonstration dataset
// is returned instead of the error. Fallback results are never cached, so the
// next request tries the database again.
type SnapshotService struct {
	holdingRepo  *repository.HoldingRepository
	goalRepo     *repository.GoalRepository
	demoFallback bool
	log          zerolog.Logger
	now          func() time.Time

	mu     sync.RWMutex
	cached *LoadedSnapshot
	// generation is bumped by Invalidate. A refresh that started under an
	// older generation returns its result but does not cache it.
	generation uint64

	loads singleflight.Group
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(
	holdingRepo *repository.HoldingRepository,
	goalRepo *repository.GoalRepository,
	demoFallback bool,
	log zerolog.Logger,
) *SnapshotService {
	return &SnapshotService{
		holdingRepo:  holdingRepo,
		goalRepo:     goalRepo,
		demoFallback: demoFallback,
		log:          log.With().Str("component", "snapshot").Logger(),
		now:          time.Now,
	}
}

// Snapshot returns the cached snapshot, loading it first if needed.
// Concurrent callers on a cold cache share a single load.
func (s *SnapshotService) Snapshot(ctx context.Context) (LoadedSnapshot, error) {
	s.mu.RLock()
	cached, gen := s.cached, s.generation
	s.mu.RUnlock()

	if cached != nil {
		return *cached, nil
	}

	v, err, _ := s.loads.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		s.mu.RLock()
		cached := s.cached
		s.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}
		return s.refresh(ctx, gen)
	})
	if err != nil {
		return LoadedSnapshot{}, err
	}
	return v.(LoadedSnapshot), nil
}

// Refresh reloads the snapshot from storage and replaces the cache.
func (s *SnapshotService) Refresh(ctx context.Context) (LoadedSnapshot, error) {
	return s.refresh(ctx, s.currentGeneration())
}

func (s *SnapshotService) refresh(ctx context.Context, gen uint64) (LoadedSnapshot, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		if !s.demoFallback {
			return LoadedSnapshot{}, err
		}
		s.log.Warn().Err(err).Msg("Loading snapshot failed, serving demonstration data")
		return LoadedSnapshot{Snapshot: DemoSnapshot(), Demo: true, LoadedAt: s.now()}, nil
	}

	loaded := LoadedSnapshot{Snapshot: snapshot, LoadedAt: s.now()}

	if !s.store(loaded, gen) {
		s.log.Debug().Msg("Snapshot invalidated during refresh, result not cached")
		return loaded, nil
	}

	s.log.Debug().
		Int("holdings", len(snapshot.LatestHoldings)).
		Int("history", len(snapshot.HistoricalHoldings)).
		Int("goals", len(snapshot.Goals)).
		Str("latest_month", snapshot.LatestMonth.String()).
		Msg("Snapshot refreshed")

	return loaded, nil
}

// Invalidate drops the cached snapshot so the next read reloads it.
func (s *SnapshotService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.generation++
	s.mu.Unlock()
}

// store caches loaded unless the snapshot was invalidated after gen was read.
func (s *SnapshotService) store(loaded LoadedSnapshot, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return false
	}
	s.cached = &loaded
	return true
}

func (s *SnapshotService) currentGeneration() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *SnapshotService) load(ctx context.Context) (model.Snapshot, error) {
	var snapshot model.Snapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		latest, err := s.holdingRepo.GetLatestHoldings(gctx)
		snapshot.LatestHoldings = latest
		return err
	})
	g.Go(func() error {
		history, err := s.holdingRepo.GetHistory(gctx, model.HistoryFilter{})
		snapshot.HistoricalHoldings = history
		return err
	})
	g.Go(func() error {
		month, err := s.holdingRepo.GetLatestMonth(gctx)
		snapshot.LatestMonth = month
		return err
	})
	g.Go(func() error {
		goals, err := s.goalRepo.GetGoals(gctx)
		snapshot.Goals = goals
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToLoadSnapshot, err)
	}

	return snapshot, nil
}
