// Package export writes expense data to CSV and Excel files under the
// exports directory.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/anindyar/dompet/internal/model"
)

// expenseHeader is the column order for every expense dump.
var expenseHeader = []string{"id", "date", "category", "amount", "description", "created_at"}

const maxColumnWidth = 50

// Service writes export files into a single output directory, created on
// demand.
type Service struct {
	exportDir string
}

// NewService creates an export service rooted at exportDir.
func NewService(exportDir string) *Service {
	return &Service{exportDir: exportDir}
}

// ExportCSV writes expenses as delimited text with a header row. An empty
// filename gets a timestamped default. Returns the written file's path.
func (s *Service) ExportCSV(expenses []model.Expense, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("expenses_export_%s.csv", time.Now().Format("20060102_150405"))
	}

	path, err := s.preparePath(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(expenseHeader); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}

	for _, exp := range expenses {
		record := expenseRecord(&exp)
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write expense %d: %w", exp.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return path, nil
}

// ExportExcel writes expenses to a single-sheet workbook with auto-sized
// columns.
func (s *Service) ExportExcel(expenses []model.Expense, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("expenses_export_%s.xlsx", time.Now().Format("20060102_150405"))
	}

	path, err := s.preparePath(filename)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Expenses"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	rows := make([][]any, 0, len(expenses)+1)
	rows = append(rows, toAnyRow(expenseHeader))
	for _, exp := range expenses {
		rows = append(rows, []any{
			exp.ID,
			exp.DateString(),
			exp.Category,
			exp.Amount,
			exp.Description,
			exp.CreatedAt.Format(time.DateTime),
		})
	}

	if err := writeSheet(f, sheet, rows); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return path, nil
}

// ExportMonthlyReport writes a three-sheet monthly report: summary metrics,
// the category breakdown, and the transaction detail.
func (s *Service) ExportMonthlyReport(summary *model.MonthlySummary, expenses []model.Expense) (string, error) {
	if summary == nil {
		return "", fmt.Errorf("summary cannot be nil")
	}

	filename := fmt.Sprintf("monthly_report_%d_%02d_%s.xlsx",
		summary.Year, summary.Month, time.Now().Format("20060102_150405"))

	path, err := s.preparePath(filename)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Ringkasan"); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Metrik", "Nilai"},
		{"Bulan", fmt.Sprintf("%02d/%d", summary.Month, summary.Year)},
		{"Total Pengeluaran", summary.TotalExpenses},
		{"Jumlah Transaksi", len(expenses)},
		{"Jumlah Kategori", len(summary.CategoryBreakdown)},
	}
	if err := writeSheet(f, "Ringkasan", summaryRows); err != nil {
		return "", err
	}

	breakdownRows := make([][]any, 0, len(summary.CategoryBreakdown)+1)
	breakdownRows = append(breakdownRows, []any{"Kategori", "Total"})
	for _, ct := range summary.CategoryBreakdown {
		breakdownRows = append(breakdownRows, []any{ct.Category, ct.Total})
	}
	if _, err := f.NewSheet("Per Kategori"); err != nil {
		return "", fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeSheet(f, "Per Kategori", breakdownRows); err != nil {
		return "", err
	}

	detailRows := make([][]any, 0, len(expenses)+1)
	detailRows = append(detailRows, toAnyRow(expenseHeader))
	for _, exp := range expenses {
		detailRows = append(detailRows, []any{
			exp.ID,
			exp.DateString(),
			exp.Category,
			exp.Amount,
			exp.Description,
			exp.CreatedAt.Format(time.DateTime),
		})
	}
	if _, err := f.NewSheet("Detail Transaksi"); err != nil {
		return "", fmt.Errorf("failed to add sheet: %w", err)
	}
	if err := writeSheet(f, "Detail Transaksi", detailRows); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	return path, nil
}

func (s *Service) preparePath(filename string) (string, error) {
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(s.exportDir, filename), nil
}

// writeSheet fills a sheet row by row and auto-sizes every column to its
// widest cell, capped at maxColumnWidth.
func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	widths := map[int]int{}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}

			if l := len(fmt.Sprintf("%v", value)); l > widths[c] {
				widths[c] = l
			}
		}
	}

	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("failed to build column name: %w", err)
		}
		adjusted := width + 2
		if adjusted > maxColumnWidth {
			adjusted = maxColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, float64(adjusted)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	return nil
}

func expenseRecord(exp *model.Expense) []string {
	return []string{
		strconv.FormatInt(exp.ID, 10),
		exp.DateString(),
		exp.Category,
		strconv.FormatFloat(exp.Amount, 'f', -1, 64),
		exp.Description,
		exp.CreatedAt.Format(time.DateTime),
	}
}

func toAnyRow(strs []string) []any {
	row := make([]any, len(strs))
	for i, s := range strs {
		row[i] = s
	}
	return row
}
