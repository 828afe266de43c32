package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"finboard/models"
)

const txnSelectQuery = `SELECT t.id, t.description, t.amount, t.category, t.kind,
	t.account_id, t.transaction_date, t.created_at,
	COALESCE(a.name, 'Unknown')
	FROM transactions t
	LEFT JOIN accounts a ON t.account_id = a.id`

func scanTransaction(scanner interface{ Scan(...any) error }) (models.Transaction, error) {
	var t models.Transaction
	var date string
	err := scanner.Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Kind,
		&t.AccountID, &date, &t.CreatedAt, &t.AccountName)
	if err != nil {
		return t, err
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return t, fmt.Errorf("parse transaction date %q: %w", date, err)
	}
	t.Date = models.Date{Time: parsed}
	return t, nil
}

// GetTransaction retrieves a single transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id int) (models.Transaction, error) {
	t, err := scanTransaction(s.db.QueryRowContext(ctx, txnSelectQuery+" WHERE t.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, fmt.Errorf("transaction %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns all transactions, newest date first, each
// annotated with its account name.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, txnSelectQuery+" ORDER BY t.transaction_date DESC, t.id DESC")
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// CreateTransaction inserts the transaction and applies its effect to the
// owning account's balance as a relative delta, both inside one SQL
// transaction. Income adds the amount, expense subtracts it. Serializing on
// the database transaction is what makes concurrent creates against the
// same account commute.
func (s *Store) CreateTransaction(ctx context.Context, input models.TransactionInput) (models.Transaction, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("begin create transaction: %w", err)
	}
	defer tx.Rollback()

	var accountID int
	err = tx.QueryRowContext(ctx, "SELECT id FROM accounts WHERE id = ?", input.AccountID).Scan(&accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, fmt.Errorf("account %d: %w", input.AccountID, models.ErrNotFound)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("check account: %w", err)
	}

	var id int
	err = tx.QueryRowContext(ctx,
		`INSERT INTO transactions (description, amount, category, kind, account_id, transaction_date)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		input.Description, int64(input.Amount), input.Category, input.Kind,
		input.AccountID, input.Date.String()).Scan(&id)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	delta := int64(input.Amount)
	if input.Kind == models.KindExpense {
		delta = -delta
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE accounts SET balance = balance + ? WHERE id = ?", delta, input.AccountID); err != nil {
		return models.Transaction{}, fmt.Errorf("apply balance delta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Transaction{}, fmt.Errorf("commit create transaction: %w", err)
	}
	return s.GetTransaction(ctx, id)
}

// DeleteTransaction removes the transaction and reverses its balance effect
// in the same SQL transaction, keeping the account consistent with the
// remaining history.
func (s *Store) DeleteTransaction(ctx context.Context, id int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	var amount int64
	var kind string
	var accountID int
	err = tx.QueryRowContext(ctx,
		"SELECT amount, kind, account_id FROM transactions WHERE id = ?", id).
		Scan(&amount, &kind, &accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("transaction %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	delta := -amount
	if kind == models.KindExpense {
		delta = amount
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE accounts SET balance = balance + ? WHERE id = ?", delta, accountID); err != nil {
		return fmt.Errorf("reverse balance delta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}
	return nil
}
