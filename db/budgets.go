package db

import (
	"context"
	"fmt"

	"finboard/models"
)

const budgetSelectQuery = `SELECT id, category, amount, month, created_at FROM budgets`

func scanBudget(scanner interface{ Scan(...any) error }) (models.Budget, error) {
	var b models.Budget
	err := scanner.Scan(&b.ID, &b.Category, &b.Amount, &b.Month, &b.CreatedAt)
	return b, err
}

// ListBudgetsByMonth returns all budgets for a YYYY-MM month key. Duplicate
// (category, month) rows are possible and all are returned.
func (s *Store) ListBudgetsByMonth(ctx context.Context, month string) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx, budgetSelectQuery+" WHERE month = ? ORDER BY category, id", month)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// CreateBudget creates a budget row and returns its id.
func (s *Store) CreateBudget(ctx context.Context, input models.BudgetInput) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO budgets (category, amount, month) VALUES (?, ?, ?) RETURNING id",
		input.Category, int64(input.Amount), input.Month).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create budget: %w", err)
	}
	return id, nil
}
