package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

// AddExpense inserts a single expense and returns its new id.
func (s *SQLiteStorage) AddExpense(ctx context.Context, expense *model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(expense); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (date, category, amount, description)
		VALUES (?, ?, ?, ?)
	`, expense.DateString(), expense.Category, expense.Amount, expense.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to insert expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get expense ID: %w", err)
	}

	slog.Debug("expense added", "id", id, "category", expense.Category)
	return id, nil
}

// AddExpenses inserts multiple expenses in a single transaction. The batch
// is all-or-nothing: any row failure rolls back the whole insert.
func (s *SQLiteStorage) AddExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpenses(expenses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (date, category, amount, description)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, exp := range expenses {
		if _, err := stmt.ExecContext(ctx, exp.DateString(), exp.Category, exp.Amount, exp.Description); err != nil {
			return fmt.Errorf("failed to insert expense at index %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetExpenseByID retrieves a single expense. A missing id yields (nil, nil),
// not an error.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var exp model.Expense
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, category, amount, description, created_at, updated_at
		FROM expenses
		WHERE id = ?
	`, id).Scan(
		&exp.ID,
		&exp.Date,
		&exp.Category,
		&exp.Amount,
		&description,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	if description.Valid {
		exp.Description = description.String
	}

	return &exp, nil
}

// GetExpenses retrieves expenses matching the filter, most recent first.
// Month and year filtering compares the year and zero-padded month extracted
// from the stored date text, which is why dates must be persisted in the
// model.DateLayout format.
func (s *SQLiteStorage) GetExpenses(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.Month != 0 {
		if err := validateMonth(filter.Month); err != nil {
			return nil, err
		}
	}

	query := `
		SELECT id, date, category, amount, description, created_at, updated_at
		FROM expenses
		WHERE 1=1`
	args := []any{}

	switch {
	case filter.Month != 0 && filter.Year != 0:
		query += " AND strftime('%Y', date) = ? AND strftime('%m', date) = ?"
		args = append(args, fmt.Sprintf("%d", filter.Year), fmt.Sprintf("%02d", filter.Month))
	case filter.Year != 0:
		query += " AND strftime('%Y', date) = ?"
		args = append(args, fmt.Sprintf("%d", filter.Year))
	}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	query += " ORDER BY date DESC, created_at DESC, id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// UpdateExpense replaces all mutable fields of an expense. Returns false
// when no row matched the id.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, id int64, expense *model.Expense) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if err := validateExpense(expense); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET date = ?, category = ?, amount = ?, description = ?
		WHERE id = ?
	`, expense.DateString(), expense.Category, expense.Amount, expense.Description, id)
	if err != nil {
		return false, fmt.Errorf("failed to update expense %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		slog.Debug("expense not found for update", "id", id)
	}
	return affected > 0, nil
}

// DeleteExpense removes an expense. Returns false when no row matched the id.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		slog.Debug("expense not found for deletion", "id", id)
	}
	return affected > 0, nil
}

func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		var exp model.Expense
		var description sql.NullString
		if err := rows.Scan(
			&exp.ID,
			&exp.Date,
			&exp.Category,
			&exp.Amount,
			&description,
			&exp.CreatedAt,
			&exp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if description.Valid {
			exp.Description = description.String
		}
		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}
