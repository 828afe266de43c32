package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finboard/models"
)

const goalSelectQuery = `SELECT id, name, target_amount, current_amount, deadline, created_at FROM goals`

func scanGoal(scanner interface{ Scan(...any) error }) (models.Goal, error) {
	var g models.Goal
	var deadline string
	err := scanner.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &deadline, &g.CreatedAt)
	if err != nil {
		return g, err
	}
	parsed, err := time.Parse("2006-01-02", deadline)
	if err != nil {
		return g, fmt.Errorf("parse goal deadline %q: %w", deadline, err)
	}
	g.Deadline = models.Date{Time: parsed}
	g.Progress = models.ProgressPercent(g.CurrentAmount, g.TargetAmount)
	return g, nil
}

// GetGoal retrieves a single goal by ID.
func (s *Store) GetGoal(ctx context.Context, id int) (models.Goal, error) {
	g, err := scanGoal(s.db.QueryRowContext(ctx, goalSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, fmt.Errorf("goal %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// ListGoals returns all goals.
func (s *Store) ListGoals(ctx context.Context) ([]models.Goal, error) {
	rows, err := s.db.QueryContext(ctx, goalSelectQuery+" ORDER BY deadline, id")
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// CreateGoal creates a goal with zero progress and returns its id.
func (s *Store) CreateGoal(ctx context.Context, input models.GoalInput) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO goals (name, target_amount, deadline) VALUES (?, ?, ?) RETURNING id",
		input.Name, int64(input.TargetAmount), input.Deadline.String()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create goal: %w", err)
	}
	return id, nil
}

// UpdateGoalProgress sets a goal's current amount; no other field is
// mutable after creation.
func (s *Store) UpdateGoalProgress(ctx context.Context, id int, current models.Cents) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE goals SET current_amount = ? WHERE id = ?", int64(current), id)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("goal %d: %w", id, models.ErrNotFound)
	}
	return nil
}
