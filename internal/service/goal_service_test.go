package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/testutil"
)

func TestGoalService_CreateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("stores goal with deadline", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestGoalService(t, db)

		// Execute
		goal, err := svc.CreateGoal(ctx, request.CreateGoalRequest{
			Name:     "新車貯金",
			Category: "貯蓄",
			Target:   balance(3_000_000),
			Deadline: "2024-06-30",
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateGoal() returned unexpected error: %v", err)
		}
		if goal.Deadline != model.NewDate(2024, 6, 30) {
			t.Errorf("Expected deadline 2024-06-30, got %s", goal.Deadline)
		}

		goals, err := svc.GetGoals(ctx)
		if err != nil {
			t.Fatalf("GetGoals() returned unexpected error: %v", err)
		}
		if len(goals) != 1 || goals[0].ID != goal.ID || goals[0].Target != 3_000_000 {
			t.Errorf("Unexpected stored goals: %+v", goals)
		}
	})

	t.Run("deadline is optional", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestGoalService(t, db)

		goal, err := svc.CreateGoal(ctx, request.CreateGoalRequest{Name: "資産1000万", Target: balance(10_000_000)})
		if err != nil {
			t.Fatalf("CreateGoal() returned unexpected error: %v", err)
		}
		if !goal.Deadline.IsZero() {
			t.Errorf("Expected no deadline, got %s", goal.Deadline)
		}
	})
}

func TestGoalService_GetGoals(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestGoalService(t, db)

	first := testutil.CreateGoal(t, db, "資産1000万", 10_000_000)
	testutil.NewGoal().WithName("新車貯金").WithoutDeadline().Build(t, db)

	goals, err := svc.GetGoals(ctx)
	if err != nil {
		t.Fatalf("GetGoals() returned unexpected error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("Expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != first.ID {
		t.Errorf("Expected goals in creation order, first was %s", goals[0].Name)
	}
	if !goals[1].Deadline.IsZero() {
		t.Errorf("Expected empty deadline, got %s", goals[1].Deadline)
	}
}

func TestGoalService_DeleteGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing goal", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestGoalService(t, db)
		goal := testutil.CreateGoal(t, db, "資産1000万", 10_000_000)

		if err := svc.DeleteGoal(ctx, goal.ID); err != nil {
			t.Fatalf("DeleteGoal() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "goal", 0)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestGoalService(t, db)

		if err := svc.DeleteGoal(ctx, testutil.MakeID()); !errors.Is(err, apperrors.ErrGoalNotFound) {
			t.Errorf("Expected ErrGoalNotFound, got %v", err)
		}
	})
}
