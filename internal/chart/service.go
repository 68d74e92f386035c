// Package chart renders expense summaries as PNG images under the charts
// directory.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	chartlib "github.com/wcharczuk/go-chart/v2"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/model"
)

// Service renders charts into a single output directory, created on demand.
type Service struct {
	chartDir string
}

// NewService creates a chart service rooted at chartDir.
func NewService(chartDir string) *Service {
	return &Service{chartDir: chartDir}
}

// CategoryPie renders a month's category breakdown as a pie chart. An empty
// breakdown is an error; there is nothing to plot.
func (s *Service) CategoryPie(summary *model.MonthlySummary) (string, error) {
	if summary == nil || len(summary.CategoryBreakdown) == 0 {
		return "", fmt.Errorf("no data for chart generation")
	}

	values := make([]chartlib.Value, 0, len(summary.CategoryBreakdown))
	for _, ct := range summary.CategoryBreakdown {
		values = append(values, chartlib.Value{
			Value: ct.Total,
			Label: fmt.Sprintf("%s (%s)", ct.Category, cli.FormatRupiah(ct.Total)),
		})
	}

	pie := chartlib.PieChart{
		Title:  fmt.Sprintf("Distribusi Pengeluaran - %s %d", cli.MonthName(summary.Month), summary.Year),
		Width:  1024,
		Height: 768,
		Values: values,
	}

	path, err := s.preparePath(fmt.Sprintf("expense_chart_%d_%02d.png", summary.Year, summary.Month))
	if err != nil {
		return "", err
	}

	if err := s.render(path, pie.Render); err != nil {
		return "", err
	}
	return path, nil
}

// MonthlyTrend renders a year's per-month totals as a line chart. Months
// with no spending plot as zero.
func (s *Service) MonthlyTrend(summary *model.YearlySummary) (string, error) {
	if summary == nil || len(summary.MonthlyBreakdown) == 0 {
		return "", fmt.Errorf("no data for trend chart")
	}

	totals := make(map[int]float64, len(summary.MonthlyBreakdown))
	for _, mt := range summary.MonthlyBreakdown {
		totals[mt.Month] = mt.Total
	}

	xs := make([]float64, 0, 12)
	ys := make([]float64, 0, 12)
	for month := 1; month <= 12; month++ {
		xs = append(xs, float64(month))
		ys = append(ys, totals[month])
	}

	graph := chartlib.Chart{
		Title:  fmt.Sprintf("Trend Pengeluaran Bulanan %d", summary.Year),
		Width:  1024,
		Height: 512,
		XAxis: chartlib.XAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return cli.MonthName(int(f))
				}
				return ""
			},
		},
		YAxis: chartlib.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return cli.FormatRupiah(f)
				}
				return ""
			},
		},
		Series: []chartlib.Series{
			chartlib.ContinuousSeries{
				Name:    "Total",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	path, err := s.preparePath("monthly_trend_chart.png")
	if err != nil {
		return "", err
	}

	if err := s.render(path, graph.Render); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Service) preparePath(filename string) (string, error) {
	if err := os.MkdirAll(s.chartDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}
	return filepath.Join(s.chartDir, filename), nil
}

func (s *Service) render(path string, render func(chartlib.RendererProvider, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := render(chartlib.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
