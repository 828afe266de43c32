package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the repository for all finance records. It is constructed once at
// startup and passed explicitly to the handlers; every method takes a
// context and scopes its writes to a single SQL transaction, so a failure
// never leaves a partial mutation behind.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Wipe deletes all transactions, budgets, and goals, and resets every
// account balance to zero. Accounts themselves are retained, active flags
// untouched. All of it happens in one SQL transaction.
func (s *Store) Wipe(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin wipe: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM transactions",
		"DELETE FROM budgets",
		"DELETE FROM goals",
		"UPDATE accounts SET balance = 0",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("wipe data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wipe: %w", err)
	}
	return nil
}
