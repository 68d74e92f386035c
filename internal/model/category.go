package model

import "time"

// Category is a named grouping label for expenses. Expenses reference
// categories by name without a foreign key, so an expense may carry a name
// that no longer appears in the categories table.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Description string
	BudgetLimit float64 // aspirational; nothing enforces it
	ID          int64
}
