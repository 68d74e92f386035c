// Package expense implements the business layer between user input and
// storage: every write is validated here first, and user-correctable
// problems come back as user-facing errors rather than storage failures.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anindyar/dompet/internal/common"
	"github.com/anindyar/dompet/internal/input"
	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

// Service coordinates validation and persistence for expense operations.
type Service struct {
	store service.Storage
}

// NewService creates an expense service over the given storage.
func NewService(store service.Storage) *Service {
	return &Service{store: store}
}

// CreateParams carries raw user input for a new or updated expense. Amount
// stays a string so the input layer can normalize currency prefixes and
// decimal separators.
type CreateParams struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// Create validates params and persists a new expense.
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Expense, error) {
	exp, err := s.validate(ctx, params)
	if err != nil {
		return nil, err
	}

	id, err := s.store.AddExpense(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	exp.ID = id

	return exp, nil
}

// Update validates params and replaces all mutable fields of an existing
// expense. A missing id is reported as a user-facing not-found error.
func (s *Service) Update(ctx context.Context, id int64, params CreateParams) error {
	exp, err := s.validate(ctx, params)
	if err != nil {
		return err
	}

	ok, err := s.store.UpdateExpense(ctx, id, exp)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if !ok {
		return common.NewUserError(fmt.Sprintf("expense %d not found", id), common.ErrNotFound)
	}

	return nil
}

// Delete removes an expense by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !ok {
		return common.NewUserError(fmt.Sprintf("expense %d not found", id), common.ErrNotFound)
	}

	return nil
}

// History returns expenses matching the filter, most recent first.
func (s *Service) History(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	return s.store.GetExpenses(ctx, filter)
}

// CategoryNames returns the known category names in display order.
func (s *Service) CategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	return names, nil
}

func (s *Service) validate(ctx context.Context, params CreateParams) (*model.Expense, error) {
	if !input.ValidateDate(params.Date) {
		return nil, common.NewUserError("invalid date format, use YYYY-MM-DD", common.ErrInvalidInput)
	}
	if !input.ValidateAmount(params.Amount) {
		return nil, common.NewUserError("invalid amount, must be a positive number", common.ErrInvalidInput)
	}
	if !input.ValidateCategory(params.Category, nil) {
		return nil, common.NewUserError("category cannot be empty", common.ErrInvalidInput)
	}

	date, err := input.ParseDate(params.Date)
	if err != nil {
		return nil, common.NewUserError("invalid date format, use YYYY-MM-DD", err)
	}

	category := strings.TrimSpace(params.Category)

	// Categories are referenced by name without a foreign key; an unknown
	// name is allowed, but worth flagging.
	known, err := s.store.GetCategoryByName(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if known == nil {
		slog.Warn("expense references unknown category", "category", category)
	}

	return &model.Expense{
		Date:        date,
		Category:    category,
		Amount:      input.ParseAmount(params.Amount),
		Description: strings.TrimSpace(params.Description),
	}, nil
}
