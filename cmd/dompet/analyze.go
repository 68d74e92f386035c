package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/analysis"
	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/input"
	"github.com/anindyar/dompet/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze spending habits",
	}

	cmd.AddCommand(analyzeMonthlyCmd())
	cmd.AddCommand(analyzeYearlyCmd())
	cmd.AddCommand(analyzeTrendCmd())
	cmd.AddCommand(analyzePatternsCmd())

	return cmd
}

func analyzeMonthlyCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Per-category percentages for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			if month == 0 {
				month = int(now.Month())
			}
			if year == 0 {
				year = now.Year()
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			result, err := analysis.NewEngine(store).MonthlyAnalysis(ctx, year, month)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("🔍 Analysis %s %d", cli.MonthName(month), year)))

			if result.TotalExpenses == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this month."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("CATEGORY\tTOTAL\tSHARE"))
			for _, share := range result.Breakdown {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					cli.FormatCategory(share.Category),
					cli.FormatRupiah(share.Total),
					cli.FormatPercentage(share.Percentage))
			}
			fmt.Fprintf(w, "TOTAL\t%s\t\n", cli.FormatRupiah(result.TotalExpenses))
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default: current month)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}

func analyzeYearlyCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Month-over-month statistics for a year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if year == 0 {
				year = time.Now().Year()
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			result, err := analysis.NewEngine(store).YearlyAnalysis(ctx, year)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("🔍 Analysis %d", year)))

			if result.TotalExpenses == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this year."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("MONTH\tTOTAL\tTRANSACTIONS"))
			for _, stat := range result.MonthlyTotals {
				fmt.Fprintf(w, "%s\t%s\t%d\n",
					cli.MonthName(stat.Month), cli.FormatRupiah(stat.Total), stat.TransactionCount)
			}
			_ = w.Flush()

			fmt.Printf("\nTotal: %s\n", cli.FormatRupiah(result.TotalExpenses))
			fmt.Printf("Monthly average: %s\n", cli.FormatRupiah(result.MonthlyAverage))
			if result.MostExpensive != nil {
				fmt.Printf("Most expensive month: %s (%s)\n",
					cli.MonthName(result.MostExpensive.Month), cli.FormatRupiah(result.MostExpensive.Total))
			}
			if result.LeastExpensive != nil {
				fmt.Printf("Least expensive month: %s (%s)\n",
					cli.MonthName(result.LeastExpensive.Month), cli.FormatRupiah(result.LeastExpensive.Total))
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}

func analyzeTrendCmd() *cobra.Command {
	var (
		category string
		months   int
	)

	cmd := &cobra.Command{
		Use:     "trend",
		Short:   "Track a category's spending over recent months",
		Example: `  dompet analyze trend --category Transportasi --months 6`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if category == "" {
				return fmt.Errorf("--category is required")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			points, err := analysis.NewEngine(store).CategoryTrend(ctx, category, months)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("📈 Trend %s (last %d months)", cli.FormatCategory(category), months)))

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("MONTH\tTOTAL\tSHARE OF MONTH"))
			for _, p := range points {
				fmt.Fprintf(w, "%s %d\t%s\t%s\n",
					cli.MonthName(p.Month), p.Year, cli.FormatRupiah(p.Total), cli.FormatPercentage(p.Percentage))
			}
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category to track (required)")
	cmd.Flags().IntVarP(&months, "months", "n", 6, "number of months to look back")

	return cmd
}

func analyzePatternsCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:     "patterns",
		Short:   "Spending patterns over a date range",
		Example: `  dompet analyze patterns --from 2025-01-01 --to 2025-06-30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			if to == "" {
				to = now.Format(model.DateLayout)
			}
			if from == "" {
				from = now.AddDate(0, -3, 0).Format(model.DateLayout)
			}

			start, err := input.ParseDate(from)
			if err != nil {
				return fmt.Errorf("invalid --from date, use YYYY-MM-DD")
			}
			end, err := input.ParseDate(to)
			if err != nil {
				return fmt.Errorf("invalid --to date, use YYYY-MM-DD")
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			report, err := analysis.NewEngine(store).SpendingPatterns(ctx, start, end)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("🔍 Patterns %s — %s", from, to)))

			if report.TransactionCount == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded in this range."))
				return nil
			}

			fmt.Printf("Total: %s over %d transactions\n",
				cli.FormatRupiah(report.TotalExpenses), report.TransactionCount)
			fmt.Printf("Average per transaction: %s\n", cli.FormatRupiah(report.AveragePerTransaction))
			fmt.Printf("Busiest day: %s (%d transactions)\n",
				cli.WeekdayName(report.MostCommonWeekday), report.WeekdayCount)

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("CATEGORY\tSHARE"))
			for category, pct := range report.CategoryDistribution {
				fmt.Fprintf(w, "%s\t%s\n", cli.FormatCategory(category), cli.FormatPercentage(pct))
			}
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "range start in YYYY-MM-DD format (default: 3 months ago)")
	cmd.Flags().StringVar(&to, "to", "", "range end in YYYY-MM-DD format (default: today)")

	return cmd
}
