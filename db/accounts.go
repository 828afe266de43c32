package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"finboard/models"
)

const accountSelectQuery = `SELECT id, name, type, balance, color, is_active, created_at FROM accounts`

func scanAccount(scanner interface{ Scan(...any) error }) (models.Account, error) {
	var a models.Account
	err := scanner.Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.Color, &a.IsActive, &a.CreatedAt)
	return a, err
}

// GetAccount retrieves a single account by ID, active or not.
func (s *Store) GetAccount(ctx context.Context, id int) (models.Account, error) {
	a, err := scanAccount(s.db.QueryRowContext(ctx, accountSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// ListAccounts returns active accounts only, ordered by name.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, accountSelectQuery+" WHERE is_active = 1 ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// CreateAccount creates an account with zero balance. An empty color falls
// back to the default.
func (s *Store) CreateAccount(ctx context.Context, input models.AccountInput) (models.Account, error) {
	color := input.Color
	if color == "" {
		color = models.DefaultAccountColor
	}

	var id int
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO accounts (name, type, color) VALUES (?, ?, ?) RETURNING id",
		input.Name, input.Type, color).Scan(&id)
	if err != nil {
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}
	return s.GetAccount(ctx, id)
}

// UpdateAccount applies a partial update. A non-nil Balance sets the balance
// directly, bypassing transaction-driven maintenance.
func (s *Store) UpdateAccount(ctx context.Context, id int, u models.AccountUpdate) (models.Account, error) {
	var sets []string
	var args []any
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, *u.Type)
	}
	if u.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *u.Color)
	}
	if u.Balance != nil {
		sets = append(sets, "balance = ?")
		args = append(args, int64(*u.Balance))
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE accounts SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Account{}, fmt.Errorf("update account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Account{}, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	return s.GetAccount(ctx, id)
}

// DeactivateAccount soft-deletes an account. Balance and transaction
// history are retained.
func (s *Store) DeactivateAccount(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "UPDATE accounts SET is_active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deactivate account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	return nil
}
