package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/anindyar/dompet/internal/model"
)

// GetCategories returns all categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, budget_limit, description, created_at
		FROM categories
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by name, or (nil, nil) when absent.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, budget_limit, description, created_at
		FROM categories
		WHERE name = ?
	`, name)

	cat, err := scanCategory(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// CreateCategory creates a new category. A zero budgetLimit is stored as
// NULL, matching the seeded defaults.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, description string, budgetLimit float64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var budget any
	if budgetLimit > 0 {
		budget = budgetLimit
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, budget_limit, description, created_at)
		VALUES (?, ?, ?, ?)
	`, name, budget, description, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	category := &model.Category{
		ID:          id,
		Name:        name,
		Description: description,
		BudgetLimit: budgetLimit,
		CreatedAt:   now,
	}

	slog.Info("created new category", "name", name, "id", id)
	return category, nil
}

func scanCategory(scan func(dest ...any) error) (*model.Category, error) {
	var cat model.Category
	var budget sql.NullFloat64
	var description sql.NullString

	err := scan(&cat.ID, &cat.Name, &budget, &description, &cat.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}

	if budget.Valid {
		cat.BudgetLimit = budget.Float64
	}
	if description.Valid {
		cat.Description = description.String
	}

	return &cat, nil
}
