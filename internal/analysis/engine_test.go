package analysis

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

// stubStore serves canned summaries keyed by year-month and filters a fixed
// expense slice the way the real storage would.
type stubStore struct {
	summaries map[string]*model.MonthlySummary
	expenses  []model.Expense
}

func (s *stubStore) GetMonthlySummary(_ context.Context, year, month int) (*model.MonthlySummary, error) {
	if summary, ok := s.summaries[fmt.Sprintf("%d-%02d", year, month)]; ok {
		return summary, nil
	}
	return &model.MonthlySummary{Year: year, Month: month}, nil
}

func (s *stubStore) GetExpenses(_ context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	var out []model.Expense
	for _, exp := range s.expenses {
		if filter.Year != 0 && exp.Date.Year() != filter.Year {
			continue
		}
		if filter.Month != 0 && int(exp.Date.Month()) != filter.Month {
			continue
		}
		if filter.Category != "" && exp.Category != filter.Category {
			continue
		}
		out = append(out, exp)
	}
	return out, nil
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestMonthlyAnalysis(t *testing.T) {
	store := &stubStore{summaries: map[string]*model.MonthlySummary{
		"2024-01": {
			Year:          2024,
			Month:         1,
			TotalExpenses: 40000,
			CategoryBreakdown: []model.CategoryTotal{
				{Category: "Makanan & Minuman", Total: 30000},
				{Category: "Transportasi", Total: 10000},
			},
		},
	}}

	result, err := NewEngine(store).MonthlyAnalysis(context.Background(), 2024, 1)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 2)
	assert.InDelta(t, 75.0, result.Breakdown[0].Percentage, 0.001)
	assert.InDelta(t, 25.0, result.Breakdown[1].Percentage, 0.001)

	var sum float64
	for _, share := range result.Breakdown {
		sum += share.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestMonthlyAnalysis_ZeroTotal(t *testing.T) {
	store := &stubStore{summaries: map[string]*model.MonthlySummary{
		"2024-06": {
			Year:              2024,
			Month:             6,
			CategoryBreakdown: []model.CategoryTotal{{Category: "Belanja", Total: 0}},
		},
	}}

	result, err := NewEngine(store).MonthlyAnalysis(context.Background(), 2024, 6)
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 1)
	assert.Zero(t, result.Breakdown[0].Percentage)
}

func TestYearlyAnalysis(t *testing.T) {
	store := &stubStore{
		summaries: map[string]*model.MonthlySummary{
			"2024-01": {Year: 2024, Month: 1, TotalExpenses: 30000},
			"2024-03": {Year: 2024, Month: 3, TotalExpenses: 10000},
		},
		expenses: []model.Expense{
			{Date: date(t, "2024-01-10"), Category: "Belanja", Amount: 20000},
			{Date: date(t, "2024-01-20"), Category: "Belanja", Amount: 10000},
			{Date: date(t, "2024-03-05"), Category: "Belanja", Amount: 10000},
		},
	}

	result, err := NewEngine(store).YearlyAnalysis(context.Background(), 2024)
	require.NoError(t, err)

	require.Len(t, result.MonthlyTotals, 2)
	assert.Equal(t, 1, result.MonthlyTotals[0].Month)
	assert.Equal(t, 2, result.MonthlyTotals[0].TransactionCount)
	assert.Equal(t, 3, result.MonthlyTotals[1].Month)
	assert.Equal(t, 1, result.MonthlyTotals[1].TransactionCount)

	assert.InDelta(t, 40000.0, result.TotalExpenses, 0.001)
	assert.InDelta(t, 20000.0, result.MonthlyAverage, 0.001)

	require.NotNil(t, result.MostExpensive)
	assert.Equal(t, 1, result.MostExpensive.Month)
	require.NotNil(t, result.LeastExpensive)
	assert.Equal(t, 3, result.LeastExpensive.Month)
}

func TestYearlyAnalysis_EmptyYear(t *testing.T) {
	result, err := NewEngine(&stubStore{}).YearlyAnalysis(context.Background(), 2024)
	require.NoError(t, err)

	assert.Empty(t, result.MonthlyTotals)
	assert.Zero(t, result.TotalExpenses)
	assert.Nil(t, result.MostExpensive)
	assert.Nil(t, result.LeastExpensive)
}

func TestCategoryTrend(t *testing.T) {
	store := &stubStore{summaries: map[string]*model.MonthlySummary{
		"2024-02": {
			Year: 2024, Month: 2, TotalExpenses: 50000,
			CategoryBreakdown: []model.CategoryTotal{
				{Category: "Transportasi", Total: 20000},
				{Category: "Belanja", Total: 30000},
			},
		},
		"2023-12": {
			Year: 2023, Month: 12, TotalExpenses: 10000,
			CategoryBreakdown: []model.CategoryTotal{
				{Category: "Transportasi", Total: 10000},
			},
		},
	}}

	engine := NewEngine(store)
	engine.now = func() time.Time {
		return time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	}

	trend, err := engine.CategoryTrend(context.Background(), "Transportasi", 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	// Most recent month first, stepping back one calendar month at a time
	assert.Equal(t, 2024, trend[0].Year)
	assert.Equal(t, 2, trend[0].Month)
	assert.InDelta(t, 20000.0, trend[0].Total, 0.001)
	assert.InDelta(t, 40.0, trend[0].Percentage, 0.001)

	assert.Equal(t, 2024, trend[1].Year)
	assert.Equal(t, 1, trend[1].Month)
	assert.Zero(t, trend[1].Total)
	assert.Zero(t, trend[1].Percentage)

	// Year boundary
	assert.Equal(t, 2023, trend[2].Year)
	assert.Equal(t, 12, trend[2].Month)
	assert.InDelta(t, 100.0, trend[2].Percentage, 0.001)
}

func TestCategoryTrend_InvalidMonths(t *testing.T) {
	_, err := NewEngine(&stubStore{}).CategoryTrend(context.Background(), "Belanja", 0)
	assert.Error(t, err)
}

func TestSpendingPatterns(t *testing.T) {
	store := &stubStore{expenses: []model.Expense{
		{Date: date(t, "2024-01-01"), Category: "Belanja", Amount: 10000},      // Monday
		{Date: date(t, "2024-01-08"), Category: "Belanja", Amount: 20000},      // Monday
		{Date: date(t, "2024-01-09"), Category: "Transportasi", Amount: 10000}, // Tuesday
		{Date: date(t, "2024-02-15"), Category: "Belanja", Amount: 99999},      // outside range
	}}

	report, err := NewEngine(store).SpendingPatterns(context.Background(),
		date(t, "2024-01-01"), date(t, "2024-01-31"))
	require.NoError(t, err)

	assert.Equal(t, 3, report.TransactionCount)
	assert.InDelta(t, 40000.0, report.TotalExpenses, 0.001)
	assert.InDelta(t, 40000.0/3, report.AveragePerTransaction, 0.001)

	assert.Equal(t, time.Monday, report.MostCommonWeekday)
	assert.Equal(t, 2, report.WeekdayCount)

	assert.InDelta(t, 75.0, report.CategoryDistribution["Belanja"], 0.001)
	assert.InDelta(t, 25.0, report.CategoryDistribution["Transportasi"], 0.001)

	var sum float64
	for _, pct := range report.CategoryDistribution {
		sum += pct
	}
	assert.True(t, math.Abs(sum-100.0) < 0.001)
}

func TestSpendingPatterns_InclusiveBounds(t *testing.T) {
	store := &stubStore{expenses: []model.Expense{
		{Date: date(t, "2024-01-01"), Category: "Belanja", Amount: 100},
		{Date: date(t, "2024-01-31"), Category: "Belanja", Amount: 200},
	}}

	report, err := NewEngine(store).SpendingPatterns(context.Background(),
		date(t, "2024-01-01"), date(t, "2024-01-31"))
	require.NoError(t, err)

	assert.Equal(t, 2, report.TransactionCount)
}

func TestSpendingPatterns_EmptyRange(t *testing.T) {
	report, err := NewEngine(&stubStore{}).SpendingPatterns(context.Background(),
		date(t, "2024-01-01"), date(t, "2024-01-31"))
	require.NoError(t, err)

	assert.Zero(t, report.TransactionCount)
	assert.Zero(t, report.TotalExpenses)
	assert.Zero(t, report.AveragePerTransaction)
	assert.Empty(t, report.CategoryDistribution)
}

func TestSpendingPatterns_EndBeforeStart(t *testing.T) {
	_, err := NewEngine(&stubStore{}).SpendingPatterns(context.Background(),
		date(t, "2024-02-01"), date(t, "2024-01-01"))
	assert.Error(t, err)
}
