package models

import "time"

// Goal is a savings target with a deadline. CurrentAmount is updated by the
// user and is not bounded by TargetAmount.
type Goal struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  Cents     `json:"target_amount"`
	CurrentAmount Cents     `json:"current_amount"`
	Deadline      Date      `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
	// Computed fields
	Progress float64 `json:"progress"` // percent of target reached
}

// GoalInput is used for creating goals.
type GoalInput struct {
	Name         string `json:"name"`
	TargetAmount Cents  `json:"target_amount"`
	Deadline     Date   `json:"deadline"`
}

func (g *GoalInput) Validate() string {
	if g.Name == "" {
		return "name is required"
	}
	if g.TargetAmount <= 0 {
		return "target_amount must be positive"
	}
	if g.Deadline.IsZero() {
		return "deadline is required (YYYY-MM-DD)"
	}
	return ""
}

// GoalProgressInput updates a goal's current amount; nothing else is
// mutable after creation.
type GoalProgressInput struct {
	CurrentAmount *Cents `json:"current_amount"`
}

func (g *GoalProgressInput) Validate() string {
	if g.CurrentAmount == nil {
		return "current_amount is required"
	}
	if *g.CurrentAmount < 0 {
		return "current_amount cannot be negative"
	}
	return ""
}

// ProgressPercent computes how far current is toward target, in percent.
// A zero or negative target yields 0 rather than a division by zero.
func ProgressPercent(current, target Cents) float64 {
	if target <= 0 {
		return 0
	}
	return float64(current) / float64(target) * 100
}
