package models

import "time"

// DefaultAccountColor is used when an account is created without a color.
const DefaultAccountColor = "#3B82F6"

// Account represents a checking, savings, or investment account. The balance
// is maintained by the store as transactions are created and deleted; it is
// never recomputed from history. Accounts are soft-deleted by clearing
// IsActive so historical transactions keep a valid reference.
type Account struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // checking, savings, investment
	Balance   Cents     `json:"balance"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountInput is used for creating accounts.
type AccountInput struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

func (a *AccountInput) Validate() string {
	if a.Name == "" {
		return "name is required"
	}
	switch a.Type {
	case "checking", "savings", "investment":
	default:
		return "type must be one of: checking, savings, investment"
	}
	return ""
}

// AccountUpdate is a partial update; nil fields are left unchanged. Balance
// here is a direct override that bypasses the transaction-driven balance
// maintenance.
type AccountUpdate struct {
	Name    *string `json:"name"`
	Type    *string `json:"type"`
	Color   *string `json:"color"`
	Balance *Cents  `json:"balance"`
}

func (u *AccountUpdate) Validate() string {
	if u.Name == nil && u.Type == nil && u.Color == nil && u.Balance == nil {
		return "at least one of name, type, color, balance is required"
	}
	if u.Name != nil && *u.Name == "" {
		return "name cannot be empty"
	}
	if u.Type != nil {
		switch *u.Type {
		case "checking", "savings", "investment":
		default:
			return "type must be one of: checking, savings, investment"
		}
	}
	return ""
}
