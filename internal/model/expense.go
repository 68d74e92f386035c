// Package model defines the core data types shared across the application.
package model

import "time"

// DateLayout is the canonical storage format for expense dates. Every
// filtered query extracts year/month from the stored text, so dates must
// always be persisted in exactly this layout.
const DateLayout = "2006-01-02"

// Expense represents a single dated monetary outflow.
type Expense struct {
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Category    string
	Description string
	Amount      float64
	ID          int64
}

// DateString returns the date in the canonical storage layout.
func (e *Expense) DateString() string {
	return e.Date.Format(DateLayout)
}
