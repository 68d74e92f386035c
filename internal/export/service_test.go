package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/anindyar/dompet/internal/model"
)

func testExpenses(t *testing.T) []model.Expense {
	t.Helper()

	date, err := time.Parse(model.DateLayout, "2024-01-15")
	require.NoError(t, err)

	created := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	return []model.Expense{
		{ID: 1, Date: date, Category: "Makanan & Minuman", Amount: 25000, Description: "Makan siang", CreatedAt: created},
		{ID: 2, Date: date, Category: "Transportasi", Amount: 15000, Description: "Ojek", CreatedAt: created},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewService(t.TempDir())

	path, err := svc.ExportCSV(testExpenses(t), "out.csv")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "date", "category", "amount", "description", "created_at"}, records[0])
	assert.Equal(t, []string{"1", "2024-01-15", "Makanan & Minuman", "25000", "Makan siang", "2024-01-15 09:30:00"}, records[1])
	assert.Equal(t, "Transportasi", records[2][2])
}

func TestExportCSV_DefaultFilename(t *testing.T) {
	svc := NewService(t.TempDir())

	path, err := svc.ExportCSV(nil, "")
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "expenses_export_"), "unexpected filename %s", base)
	assert.True(t, strings.HasSuffix(base, ".csv"), "unexpected filename %s", base)
}

func TestExportCSV_CreatesExportDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	svc := NewService(dir)

	_, err := svc.ExportCSV(testExpenses(t), "out.csv")
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestExportExcel(t *testing.T) {
	svc := NewService(t.TempDir())

	path, err := svc.ExportExcel(testExpenses(t), "out.xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, "2024-01-15", rows[1][1])
	assert.Equal(t, "Makanan & Minuman", rows[1][2])
	assert.Equal(t, "Ojek", rows[2][4])
}

func TestExportMonthlyReport(t *testing.T) {
	svc := NewService(t.TempDir())

	summary := &model.MonthlySummary{
		Year:          2024,
		Month:         1,
		TotalExpenses: 40000,
		CategoryBreakdown: []model.CategoryTotal{
			{Category: "Makanan & Minuman", Total: 25000},
			{Category: "Transportasi", Total: 15000},
		},
	}

	path, err := svc.ExportMonthlyReport(summary, testExpenses(t))
	require.NoError(t, err)

	base := filepath.Base(path)
	assert.True(t, strings.HasPrefix(base, "monthly_report_2024_01_"), "unexpected filename %s", base)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Ringkasan", "Per Kategori", "Detail Transaksi"}, f.GetSheetList())

	ringkasan, err := f.GetRows("Ringkasan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metrik", "Nilai"}, ringkasan[0])
	assert.Equal(t, "01/2024", ringkasan[1][1])

	breakdown, err := f.GetRows("Per Kategori")
	require.NoError(t, err)
	require.Len(t, breakdown, 3)
	assert.Equal(t, "Makanan & Minuman", breakdown[1][0])

	detail, err := f.GetRows("Detail Transaksi")
	require.NoError(t, err)
	require.Len(t, detail, 3)
}

func TestExportMonthlyReport_NilSummary(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.ExportMonthlyReport(nil, nil)
	assert.Error(t, err)
}
