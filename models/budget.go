package models

import "time"

// Budget is a per-category spending ceiling for one calendar month. The
// month is an opaque YYYY-MM key; nothing prevents several budgets for the
// same category in the same month.
type Budget struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Amount    Cents     `json:"amount"`
	Month     string    `json:"month"` // YYYY-MM
	CreatedAt time.Time `json:"created_at"`
}

// BudgetInput is used for creating budgets.
type BudgetInput struct {
	Category string `json:"category"`
	Amount   Cents  `json:"amount"`
	Month    string `json:"month"`
}

func (b *BudgetInput) Validate() string {
	if b.Category == "" {
		return "category is required"
	}
	if b.Amount <= 0 {
		return "amount must be positive"
	}
	if !IsMonthKey(b.Month) {
		return "month must be in YYYY-MM format"
	}
	return ""
}

// IsMonthKey reports whether s is a well-formed YYYY-MM month key.
func IsMonthKey(s string) bool {
	if len(s) != 7 {
		return false
	}
	_, err := time.Parse("2006-01", s)
	return err == nil
}
