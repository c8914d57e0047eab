package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/repository"
)

// GoalService handles savings goals.
type GoalService struct {
	goalRepo  *repository.GoalRepository
	snapshots invalidator
	log       zerolog.Logger
}

// NewGoalService creates a new GoalService.
func NewGoalService(goalRepo *repository.GoalRepository, snapshots invalidator, log zerolog.Logger) *GoalService {
	return &GoalService{
		goalRepo:  goalRepo,
		snapshots: snapshots,
		log:       log.With().Str("component", "goal").Logger(),
	}
}

// GetGoals returns all goals in creation order.
func (s *GoalService) GetGoals(ctx context.Context) ([]model.Goal, error) {
	return s.goalRepo.GetGoals(ctx)
}

// CreateGoal stores a validated goal.
func (s *GoalService) CreateGoal(ctx context.Context, req request.CreateGoalRequest) (*model.Goal, error) {
	goal := &model.Goal{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Category: strings.TrimSpace(req.Category),
		Target:   model.Money(req.Target.IntPart()),
	}

	if strings.TrimSpace(req.Deadline) != "" {
		deadline, err := model.ParseDate(req.Deadline)
		if err != nil {
			return nil, err
		}
		goal.Deadline = deadline
	}

	if err := s.goalRepo.InsertGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	s.snapshots.Invalidate()

	s.log.Info().Str("id", goal.ID).Str("name", goal.Name).Msg("Goal created")
	return goal, nil
}

// DeleteGoal removes a goal. Returns ErrGoalNotFound for an unknown id.
func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	if err := s.goalRepo.DeleteGoal(ctx, id); err != nil {
		return err
	}
	s.snapshots.Invalidate()

	s.log.Info().Str("id", id).Msg("Goal deleted")
	return nil
}
