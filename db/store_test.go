package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	s := NewStore(conn)
	t.Cleanup(func() { s.Close() })
	return s
}

func createAccount(t *testing.T, s *Store, name string) models.Account {
	t.Helper()
	a, err := s.CreateAccount(context.Background(), models.AccountInput{Name: name, Type: "checking"})
	require.NoError(t, err)
	return a
}

func TestCreateAccountDefaults(t *testing.T) {
	s := newTestStore(t)

	a := createAccount(t, s, "Checking")
	assert.Equal(t, models.Cents(0), a.Balance)
	assert.Equal(t, models.DefaultAccountColor, a.Color)
	assert.True(t, a.IsActive)
}

func TestCreateTransactionUpdatesBalance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Checking")

	_, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Paycheck",
		Amount:      10000,
		Category:    "Salary",
		Kind:        models.KindIncome,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 1),
	})
	require.NoError(t, err)

	a, err = s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(10000), a.Balance)

	_, err = s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Groceries",
		Amount:      4000,
		Category:    "Food",
		Kind:        models.KindExpense,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 5),
	})
	require.NoError(t, err)

	a, err = s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(6000), a.Balance)
}

func TestCreateTransactionUnknownAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Ghost",
		Amount:      100,
		Category:    "Misc",
		Kind:        models.KindIncome,
		AccountID:   999,
		Date:        models.NewDate(2024, time.March, 1),
	})
	require.ErrorIs(t, err, models.ErrNotFound)

	// Nothing was inserted.
	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestDeleteTransactionReversesBalance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Checking")

	income, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Paycheck",
		Amount:      10000,
		Category:    "Salary",
		Kind:        models.KindIncome,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 1),
	})
	require.NoError(t, err)
	expense, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Groceries",
		Amount:      4000,
		Category:    "Food",
		Kind:        models.KindExpense,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 5),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTransaction(ctx, expense.ID))
	got, err := s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(10000), got.Balance, "deleting an expense adds its amount back")

	require.NoError(t, s.DeleteTransaction(ctx, income.ID))
	got, err = s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(0), got.Balance, "deleting an income subtracts its amount")
}

func TestDeleteTransactionNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteTransaction(context.Background(), 42)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestListTransactionsOrderAndAccountName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Checking")

	for _, d := range []models.Date{
		models.NewDate(2024, time.March, 1),
		models.NewDate(2024, time.March, 10),
		models.NewDate(2024, time.February, 20),
	} {
		_, err := s.CreateTransaction(ctx, models.TransactionInput{
			Description: "t",
			Amount:      100,
			Category:    "Misc",
			Kind:        models.KindExpense,
			AccountID:   a.ID,
			Date:        d,
		})
		require.NoError(t, err)
	}

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "2024-03-10", txns[0].Date.String())
	assert.Equal(t, "2024-03-01", txns[1].Date.String())
	assert.Equal(t, "2024-02-20", txns[2].Date.String())
	for _, txn := range txns {
		assert.Equal(t, "Checking", txn.AccountName)
	}
}

func TestUpdateAccountPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Checking")

	name := "Everyday"
	updated, err := s.UpdateAccount(ctx, a.ID, models.AccountUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Everyday", updated.Name)
	assert.Equal(t, a.Type, updated.Type)
	assert.Equal(t, a.Color, updated.Color)

	// Direct balance override bypasses transaction maintenance.
	balance := models.Cents(123456)
	updated, err = s.UpdateAccount(ctx, a.ID, models.AccountUpdate{Balance: &balance})
	require.NoError(t, err)
	assert.Equal(t, models.Cents(123456), updated.Balance)

	_, err = s.UpdateAccount(ctx, 999, models.AccountUpdate{Name: &name})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeactivateAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Old Savings")

	_, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Deposit",
		Amount:      5000,
		Category:    "Savings",
		Kind:        models.KindIncome,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 1),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeactivateAccount(ctx, a.ID))

	// Gone from the active listing, but the record and history remain.
	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	got, err := s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, models.Cents(5000), got.Balance)

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Old Savings", txns[0].AccountName)

	require.ErrorIs(t, s.DeactivateAccount(ctx, 999), models.ErrNotFound)
}

func TestCreateBudgetAllowsDuplicateCategoryMonth(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	input := models.BudgetInput{Category: "Food", Amount: 30000, Month: "2024-03"}
	_, err := s.CreateBudget(ctx, input)
	require.NoError(t, err)
	_, err = s.CreateBudget(ctx, input)
	require.NoError(t, err)

	budgets, err := s.ListBudgetsByMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.Len(t, budgets, 2)
}

func TestListBudgetsByMonthFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateBudget(ctx, models.BudgetInput{Category: "Food", Amount: 30000, Month: "2024-03"})
	require.NoError(t, err)
	_, err = s.CreateBudget(ctx, models.BudgetInput{Category: "Food", Amount: 28000, Month: "2024-04"})
	require.NoError(t, err)

	budgets, err := s.ListBudgetsByMonth(ctx, "2024-03")
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "2024-03", budgets[0].Month)
}

func TestGoalLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateGoal(ctx, models.GoalInput{
		Name:         "Vacation",
		TargetAmount: 200000,
		Deadline:     models.NewDate(2025, time.June, 1),
	})
	require.NoError(t, err)

	g, err := s.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(0), g.CurrentAmount)
	assert.Equal(t, float64(0), g.Progress)

	require.NoError(t, s.UpdateGoalProgress(ctx, id, 50000))
	g, err = s.GetGoal(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(50000), g.CurrentAmount)
	assert.InDelta(t, 25.0, g.Progress, 0.001)

	require.ErrorIs(t, s.UpdateGoalProgress(ctx, 999, 1), models.ErrNotFound)
}

func TestWipe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := createAccount(t, s, "Checking")

	_, err := s.CreateTransaction(ctx, models.TransactionInput{
		Description: "Paycheck",
		Amount:      10000,
		Category:    "Salary",
		Kind:        models.KindIncome,
		AccountID:   a.ID,
		Date:        models.NewDate(2024, time.March, 1),
	})
	require.NoError(t, err)
	_, err = s.CreateBudget(ctx, models.BudgetInput{Category: "Food", Amount: 30000, Month: "2024-03"})
	require.NoError(t, err)
	_, err = s.CreateGoal(ctx, models.GoalInput{
		Name:         "Vacation",
		TargetAmount: 200000,
		Deadline:     models.NewDate(2025, time.June, 1),
	})
	require.NoError(t, err)

	require.NoError(t, s.Wipe(ctx))

	txns, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, txns)

	budgets, err := s.ListBudgetsByMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.Empty(t, budgets)

	goals, err := s.ListGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)

	// Accounts survive with zeroed balances.
	got, err := s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, models.Cents(0), got.Balance)
}
