package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
)

// invalidator is notified after every write that changes the snapshot.
type invalidator interface {
	Invalidate()
}

// HoldingService handles recording, listing and deleting balance records.
type HoldingService struct {
	db          *sql.DB
	holdingRepo *repository.HoldingRepository
	goalRepo    *repository.GoalRepository
	snapshots   invalidator
	log         zerolog.Logger
	now         func() time.Time
}

// NewHoldingService creates a new HoldingService.
func NewHoldingService(
	db *sql.DB,
	holdingRepo *repository.HoldingRepository,
	goalRepo *repository.GoalRepository,
	snapshots invalidator,
	log zerolog.Logger,
) *HoldingService {
	return &HoldingService{
		db:          db,
		holdingRepo: holdingRepo,
		goalRepo:    goalRepo,
		snapshots:   snapshots,
		log:         log.With().Str("component", "holding").Logger(),
		now:         time.Now,
	}
}

// GetLatestHoldings returns the latest record of every account.
func (s *HoldingService) GetLatestHoldings(ctx context.Context) ([]model.HoldingRecord, error) {
	return s.holdingRepo.GetLatestHoldings(ctx)
}

// GetHistory returns all records matching filter.
func (s *HoldingService) GetHistory(ctx context.Context, filter model.HistoryFilter) ([]model.HoldingRecord, error) {
	return s.holdingRepo.GetHistory(ctx, filter)
}

// CreateHolding records a validated balance entry. An empty month means the
// current calendar month.
func (s *HoldingService) CreateHolding(ctx context.Context, req request.CreateHoldingRequest) (*model.HoldingRecord, error) {
	now := s.now()

	month := model.YearMonthOf(now)
	if strings.TrimSpace(req.Month) != "" {
		parsed, err := model.ParseYearMonth(req.Month)
		if err != nil {
			return nil, err
		}
		month = parsed
	}

	holding := &model.HoldingRecord{
		ID:        uuid.NewString(),
		Month:     month,
		Category:  strings.TrimSpace(req.Category),
		Label:     strings.TrimSpace(req.Label),
		Balance:   model.Money(req.Balance.IntPart()),
		Memo:      req.Memo,
		CreatedAt: now.UTC(),
	}

	if err := s.holdingRepo.InsertHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}
	s.snapshots.Invalidate()

	s.log.Info().
		Str("id", holding.ID).
		Str("month", holding.Month.String()).
		Str("category", holding.Category).
		Msg("Holding recorded")

	return holding, nil
}

// DeleteHolding removes a record. Returns ErrHoldingNotFound for an unknown id.
func (s *HoldingService) DeleteHolding(ctx context.Context, id string) error {
	if err := s.holdingRepo.DeleteHolding(ctx, id); err != nil {
		return err
	}
	s.snapshots.Invalidate()

	s.log.Info().Str("id", id).Msg("Holding deleted")
	return nil
}

// ImportResult counts the rows written by Import.
type ImportResult struct {
	Holdings int `json:"holdings"`
	Goals    int `json:"goals"`
}

// Import writes an exported snapshot in one transaction. The history is
// imported when present, otherwise the latest records. Nothing is written
// when any row fails.
func (s *HoldingService) Import(ctx context.Context, snapshot model.Snapshot) (ImportResult, error) {
	records := snapshot.HistoricalHoldings
	if len(records) == 0 {
		records = snapshot.LatestHoldings
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	holdingRepo := s.holdingRepo.WithTx(tx)
	goalRepo := s.goalRepo.WithTx(tx)
	now := s.now().UTC()

	for i := range records {
		h := records[i]
		if h.Month.IsZero() {
			h.Month = snapshot.LatestMonth
		}
		if h.Month.IsZero() {
			return ImportResult{}, fmt.Errorf("holding %d (%s/%s) has no month", i, h.Category, h.Label)
		}
		h.ID = uuid.NewString()
		h.CreatedAt = now
		if err := holdingRepo.InsertHolding(ctx, &h); err != nil {
			return ImportResult{}, err
		}
	}

	for i := range snapshot.Goals {
		g := snapshot.Goals[i]
		g.ID = uuid.NewString()
		if err := goalRepo.InsertGoal(ctx, &g); err != nil {
			return ImportResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("failed to commit import: %w", err)
	}
	s.snapshots.Invalidate()

	result := ImportResult{Holdings: len(records), Goals: len(snapshot.Goals)}
	s.log.Info().Int("holdings", result.Holdings).Int("goals", result.Goals).Msg("Snapshot imported")

	return result, nil
}
