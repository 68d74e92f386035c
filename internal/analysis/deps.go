// Package analysis derives reports from stored expense data: percentage
// breakdowns, yearly statistics, category trends, and spending patterns.
// Everything here is pure computation over storage reads.
package analysis

import (
	"context"

	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

// Storage is the narrow slice of the persistence layer the engine needs.
type Storage interface {
	GetExpenses(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error)
	GetMonthlySummary(ctx context.Context, year, month int) (*model.MonthlySummary, error)
}
