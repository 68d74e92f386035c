package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anindyar/dompet/internal/model"
)

func TestCategoryPie(t *testing.T) {
	svc := NewService(t.TempDir())

	summary := &model.MonthlySummary{
		Year:          2024,
		Month:         3,
		TotalExpenses: 40000,
		CategoryBreakdown: []model.CategoryTotal{
			{Category: "Makanan & Minuman", Total: 25000},
			{Category: "Transportasi", Total: 15000},
		},
	}

	path, err := svc.CategoryPie(summary)
	require.NoError(t, err)

	assert.Equal(t, "expense_chart_2024_03.png", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCategoryPie_NoData(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.CategoryPie(nil)
	assert.Error(t, err)

	_, err = svc.CategoryPie(&model.MonthlySummary{Year: 2024, Month: 3})
	assert.Error(t, err)
}

func TestMonthlyTrend(t *testing.T) {
	svc := NewService(t.TempDir())

	summary := &model.YearlySummary{
		Year:          2024,
		TotalExpenses: 75000,
		MonthlyBreakdown: []model.MonthTotal{
			{Month: 1, Total: 30000, Count: 3},
			{Month: 3, Total: 45000, Count: 5},
		},
	}

	path, err := svc.MonthlyTrend(summary)
	require.NoError(t, err)

	assert.Equal(t, "monthly_trend_chart.png", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMonthlyTrend_NoData(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.MonthlyTrend(&model.YearlySummary{Year: 2024})
	assert.Error(t, err)
}
