// Package analytics derives month-bucketed aggregates from the transaction
// set. Every function is a pure function of its inputs: the caller supplies
// the reference date, so results are deterministic and independently
// testable.
package analytics

import (
	"time"

	"finboard/models"
)

// Summary holds the current-month totals from the first of the month
// through the reference date, inclusive.
type Summary struct {
	TotalIncome      models.Cents            `json:"total_income"`
	TotalExpenses    models.Cents            `json:"total_expenses"`
	NetIncome        models.Cents            `json:"net_income"`
	CategoryExpenses map[string]models.Cents `json:"category_expenses"`
	CurrentMonth     string                  `json:"current_month"` // YYYY-MM
}

// ChartData is a 6-month trend series, oldest month first. The three slices
// are index-aligned and always length 6.
type ChartData struct {
	Months   []string       `json:"months"` // e.g. "March 2024"
	Income   []models.Cents `json:"income"`
	Expenses []models.Cents `json:"expenses"`
}

// monthStart truncates t to the first day of its month at midnight UTC.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// dateOnly strips the time component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthlySummary partitions transactions dated within [first of the month,
// today] and totals them by kind. CategoryExpenses only has keys for
// categories with at least one expense in the window; an empty window
// yields zero totals and an empty map.
func MonthlySummary(txns []models.Transaction, today time.Time) Summary {
	start := monthStart(today)
	end := dateOnly(today)

	s := Summary{
		CategoryExpenses: map[string]models.Cents{},
		CurrentMonth:     today.Format("2006-01"),
	}

	for _, t := range txns {
		d := dateOnly(t.Date.Time)
		if d.Before(start) || d.After(end) {
			continue
		}
		switch t.Kind {
		case models.KindIncome:
			s.TotalIncome += t.Amount
		case models.KindExpense:
			s.TotalExpenses += t.Amount
			s.CategoryExpenses[t.Category] += t.Amount
		}
	}

	s.NetIncome = s.TotalIncome - s.TotalExpenses
	return s
}

// TrendSeries buckets transactions into the last 6 calendar months
// including the current one, oldest first. Month shifts are whole calendar
// months computed from a day-1 anchor, so January minus five months lands
// in August of the prior year, and each bucket covers the true calendar
// month regardless of its length.
func TrendSeries(txns []models.Transaction, today time.Time) ChartData {
	data := ChartData{
		Months:   make([]string, 0, 6),
		Income:   make([]models.Cents, 0, 6),
		Expenses: make([]models.Cents, 0, 6),
	}

	current := monthStart(today)
	for i := 5; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		next := start.AddDate(0, 1, 0)

		var income, expenses models.Cents
		for _, t := range txns {
			d := dateOnly(t.Date.Time)
			if d.Before(start) || !d.Before(next) {
				continue
			}
			switch t.Kind {
			case models.KindIncome:
				income += t.Amount
			case models.KindExpense:
				expenses += t.Amount
			}
		}

		data.Months = append(data.Months, start.Format("January 2006"))
		data.Income = append(data.Income, income)
		data.Expenses = append(data.Expenses, expenses)
	}

	return data
}
