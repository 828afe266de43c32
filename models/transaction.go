package models

import "time"

// Transaction kinds. The amount is always stored positive; the kind decides
// whether it adds to or subtracts from the account balance.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction represents a single income or expense entry. Transactions are
// immutable once created; the only mutation is deletion.
type Transaction struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Amount      Cents     `json:"amount"`
	Category    string    `json:"category"`
	Kind        string    `json:"kind"` // income, expense
	AccountID   int       `json:"account_id"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	// Computed fields
	AccountName string `json:"account_name,omitempty"`
}

// TransactionInput is used for creating transactions.
type TransactionInput struct {
	Description string `json:"description"`
	Amount      Cents  `json:"amount"`
	Category    string `json:"category"`
	Kind        string `json:"kind"`
	AccountID   int    `json:"account_id"`
	Date        Date   `json:"date"`
}

func (t *TransactionInput) Validate() string {
	if t.Description == "" {
		return "description is required"
	}
	if t.Amount <= 0 {
		return "amount must be positive"
	}
	if t.Category == "" {
		return "category is required"
	}
	switch t.Kind {
	case KindIncome, KindExpense:
	default:
		return "kind must be one of: income, expense"
	}
	if t.AccountID <= 0 {
		return "account_id is required"
	}
	if t.Date.IsZero() {
		return "date is required (YYYY-MM-DD)"
	}
	return ""
}
