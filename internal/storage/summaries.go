package storage

import (
	"context"
	"fmt"

	"github.com/anindyar/dompet/internal/model"
)

// GetMonthlySummary aggregates a month's expenses by category. A month with
// no expenses returns a zero total and an empty breakdown, never an error.
func (s *SQLiteStorage) GetMonthlySummary(ctx context.Context, year, month int) (*model.MonthlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	yearArg := fmt.Sprintf("%d", year)
	monthArg := fmt.Sprintf("%02d", month)

	summary := &model.MonthlySummary{Year: year, Month: month}

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE strftime('%Y', date) = ? AND strftime('%m', date) = ?
	`, yearArg, monthArg).Scan(&summary.TotalExpenses)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly total: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, SUM(amount) as total
		FROM expenses
		WHERE strftime('%Y', date) = ? AND strftime('%m', date) = ?
		GROUP BY category
		ORDER BY total DESC
	`, yearArg, monthArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query category breakdown: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var ct model.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		summary.CategoryBreakdown = append(summary.CategoryBreakdown, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category breakdown: %w", err)
	}

	return summary, nil
}

// GetYearlySummary aggregates a year's expenses by month, ascending by
// month number.
func (s *SQLiteStorage) GetYearlySummary(ctx context.Context, year int) (*model.YearlySummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	yearArg := fmt.Sprintf("%d", year)
	summary := &model.YearlySummary{Year: year}

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE strftime('%Y', date) = ?
	`, yearArg).Scan(&summary.TotalExpenses, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to query yearly total: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT CAST(strftime('%m', date) AS INTEGER) as month,
		       SUM(amount) as total,
		       COUNT(*) as count
		FROM expenses
		WHERE strftime('%Y', date) = ?
		GROUP BY month
		ORDER BY month
	`, yearArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly breakdown: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var mt model.MonthTotal
		if err := rows.Scan(&mt.Month, &mt.Total, &mt.Count); err != nil {
			return nil, fmt.Errorf("failed to scan month total: %w", err)
		}
		summary.MonthlyBreakdown = append(summary.MonthlyBreakdown, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly breakdown: %w", err)
	}

	return summary, nil
}
