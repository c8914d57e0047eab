package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// WithTx returns a new GoalRepository scoped to the provided transaction.
func (r *GoalRepository) WithTx(tx *sql.Tx) *GoalRepository {
	return &GoalRepository{
		db: r.db,
		tx: tx,
	}
}

func (r *GoalRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetGoals returns all goals in creation order. The first goal is the
// dashboard's main goal.
func (r *GoalRepository) GetGoals(ctx context.Context) ([]model.Goal, error) {
	query := `SELECT id, name, category, target, deadline FROM goal ORDER BY seq`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal table results: %w", err)
		}
		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// GetGoal retrieves a single goal by its ID.
// Returns ErrGoalNotFound if no goal with the given ID exists.
func (r *GoalRepository) GetGoal(ctx context.Context, id string) (model.Goal, error) {
	query := `SELECT id, name, category, target, deadline FROM goal WHERE id = ?`

	g, err := scanGoal(r.getQuerier().QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to query goal: %w", err)
	}

	return g, nil
}

// InsertGoal stores a new goal. ID must already be set.
func (r *GoalRepository) InsertGoal(ctx context.Context, g *model.Goal) error {
	query := `
        INSERT INTO goal (id, name, category, target, deadline)
        VALUES (?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.Category,
		int64(g.Target),
		g.Deadline.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}

	return nil
}

// DeleteGoal removes a goal by its ID.
// Returns ErrGoalNotFound if no goal with the given ID exists.
func (r *GoalRepository) DeleteGoal(ctx context.Context, id string) error {
	result, err := r.getQuerier().ExecContext(ctx, `DELETE FROM goal WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}

func scanGoal(row scanner) (model.Goal, error) {
	var g model.Goal
	var target int64
	var deadline string

	if err := row.Scan(&g.ID, &g.Name, &g.Category, &target, &deadline); err != nil {
		return model.Goal{}, err
	}
	g.Target = model.Money(target)

	if deadline != "" {
		d, err := model.ParseDate(deadline)
		if err != nil {
			return model.Goal{}, err
		}
		g.Deadline = d
	}

	return g, nil
}
