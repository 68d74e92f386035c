package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/anindyar/dompet/internal/input"
	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

// Engine computes derived reports over a Storage implementation.
type Engine struct {
	store Storage
	now   func() time.Time
}

// NewEngine creates an analysis engine.
func NewEngine(store Storage) *Engine {
	return &Engine{
		store: store,
		now:   time.Now,
	}
}

// MonthlyAnalysis augments a monthly summary with per-category percentages.
// A zero-total month yields zero percentages rather than dividing by zero.
func (e *Engine) MonthlyAnalysis(ctx context.Context, year, month int) (*model.MonthlyAnalysis, error) {
	summary, err := e.store.GetMonthlySummary(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	result := &model.MonthlyAnalysis{
		Year:          summary.Year,
		Month:         summary.Month,
		TotalExpenses: summary.TotalExpenses,
	}

	for _, ct := range summary.CategoryBreakdown {
		share := model.CategoryShare{
			Category: ct.Category,
			Total:    ct.Total,
		}
		if summary.TotalExpenses > 0 {
			share.Percentage = ct.Total / summary.TotalExpenses * 100
		}
		result.Breakdown = append(result.Breakdown, share)
	}

	return result, nil
}

// YearlyAnalysis walks the twelve months of a year, drops months with no
// spending, and reports the total, the average across non-zero months, and
// the most and least expensive months.
func (e *Engine) YearlyAnalysis(ctx context.Context, year int) (*model.YearlyAnalysis, error) {
	result := &model.YearlyAnalysis{Year: year}

	for month := 1; month <= 12; month++ {
		summary, err := e.store.GetMonthlySummary(ctx, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to get summary for month %d: %w", month, err)
		}
		if summary.TotalExpenses <= 0 {
			continue
		}

		expenses, err := e.store.GetExpenses(ctx, service.ExpenseFilter{Year: year, Month: month})
		if err != nil {
			return nil, fmt.Errorf("failed to count expenses for month %d: %w", month, err)
		}

		result.MonthlyTotals = append(result.MonthlyTotals, model.MonthStat{
			Year:             year,
			Month:            month,
			Total:            summary.TotalExpenses,
			TransactionCount: len(expenses),
		})
	}

	if len(result.MonthlyTotals) == 0 {
		return result, nil
	}

	for i := range result.MonthlyTotals {
		stat := &result.MonthlyTotals[i]
		result.TotalExpenses += stat.Total
		if result.MostExpensive == nil || stat.Total > result.MostExpensive.Total {
			result.MostExpensive = stat
		}
		if result.LeastExpensive == nil || stat.Total < result.LeastExpensive.Total {
			result.LeastExpensive = stat
		}
	}
	result.MonthlyAverage = result.TotalExpenses / float64(len(result.MonthlyTotals))

	return result, nil
}

// CategoryTrend reports a category's monthly total and share of spending for
// the last monthsBack calendar months, most recent month first.
func (e *Engine) CategoryTrend(ctx context.Context, category string, monthsBack int) ([]model.TrendPoint, error) {
	if monthsBack <= 0 {
		return nil, fmt.Errorf("monthsBack must be positive, got %d", monthsBack)
	}

	now := e.now()
	year, month := now.Year(), int(now.Month())

	trend := make([]model.TrendPoint, 0, monthsBack)
	for i := 0; i < monthsBack; i++ {
		summary, err := e.store.GetMonthlySummary(ctx, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to get summary for %d-%02d: %w", year, month, err)
		}

		point := model.TrendPoint{Year: year, Month: month}
		for _, ct := range summary.CategoryBreakdown {
			if ct.Category == category {
				point.Total = ct.Total
				break
			}
		}
		if summary.TotalExpenses > 0 {
			point.Percentage = point.Total / summary.TotalExpenses * 100
		}

		trend = append(trend, point)
		year, month = input.PreviousMonth(year, month)
	}

	return trend, nil
}

// SpendingPatterns summarizes all expenses inside the inclusive date range:
// total, average per transaction, the most frequent weekday (ties break to
// the first weekday encountered), and the category percentage distribution.
// An empty range yields a zero-valued report, not an error.
func (e *Engine) SpendingPatterns(ctx context.Context, start, end time.Time) (*model.SpendingReport, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s",
			end.Format(model.DateLayout), start.Format(model.DateLayout))
	}

	expenses, err := e.store.GetExpenses(ctx, service.ExpenseFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	report := &model.SpendingReport{
		Start:                start,
		End:                  end,
		CategoryDistribution: make(map[string]float64),
	}

	weekdayCounts := make(map[time.Weekday]int)
	var weekdayOrder []time.Weekday
	categoryTotals := make(map[string]float64)

	for _, exp := range expenses {
		if exp.Date.Before(start) || exp.Date.After(end) {
			continue
		}

		report.TransactionCount++
		report.TotalExpenses += exp.Amount

		weekday := exp.Date.Weekday()
		if _, seen := weekdayCounts[weekday]; !seen {
			weekdayOrder = append(weekdayOrder, weekday)
		}
		weekdayCounts[weekday]++

		categoryTotals[exp.Category] += exp.Amount
	}

	if report.TransactionCount == 0 {
		return report, nil
	}

	report.AveragePerTransaction = report.TotalExpenses / float64(report.TransactionCount)

	for _, weekday := range weekdayOrder {
		if weekdayCounts[weekday] > report.WeekdayCount {
			report.MostCommonWeekday = weekday
			report.WeekdayCount = weekdayCounts[weekday]
		}
	}

	if report.TotalExpenses > 0 {
		for category, total := range categoryTotals {
			report.CategoryDistribution[category] = total / report.TotalExpenses * 100
		}
	}

	return report, nil
}
