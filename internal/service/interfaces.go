// Package service defines the interfaces for the application's services.
package service

import (
	"context"

	"github.com/anindyar/dompet/internal/model"
)

// ExpenseFilter defines filtering options for expense queries. Filters are
// independently combinable; Month is only honored together with Year.
type ExpenseFilter struct {
	Category string
	Month    int
	Year     int
	Limit    int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Expense operations
	AddExpense(ctx context.Context, expense *model.Expense) (int64, error)
	AddExpenses(ctx context.Context, expenses []model.Expense) error
	GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error)
	GetExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	UpdateExpense(ctx context.Context, id int64, expense *model.Expense) (bool, error)
	DeleteExpense(ctx context.Context, id int64) (bool, error)

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, name, description string, budgetLimit float64) (*model.Category, error)

	// Aggregation
	GetMonthlySummary(ctx context.Context, year, month int) (*model.MonthlySummary, error)
	GetYearlySummary(ctx context.Context, year int) (*model.YearlySummary, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Backup(ctx context.Context, destPath string) error
	Close() error
}
