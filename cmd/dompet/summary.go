package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize spending by month or year",
	}

	cmd.AddCommand(summaryMonthlyCmd())
	cmd.AddCommand(summaryYearlyCmd())

	return cmd
}

func summaryMonthlyCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show a month's total and per-category breakdown",
		Example: `  dompet summary monthly
  dompet summary monthly --month 7 --year 2025`,
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

			summary, err := store.GetMonthlySummary(ctx, year, month)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("📊 Summary %s %d", cli.MonthName(month), year)))

			if summary.TotalExpenses == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this month."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("CATEGORY\tTOTAL"))
			for _, ct := range summary.CategoryBreakdown {
				fmt.Fprintf(w, "%s\t%s\n", cli.FormatCategory(ct.Category), cli.FormatRupiah(ct.Total))
			}
			fmt.Fprintf(w, "TOTAL\t%s\n", cli.FormatRupiah(summary.TotalExpenses))
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default: current month)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}

func summaryYearlyCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "yearly",
		Short: "Show a year's total and per-month breakdown",
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

			summary, err := store.GetYearlySummary(ctx, year)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("📊 Summary %d", year)))

			if summary.TotalExpenses == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded this year."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("MONTH\tTOTAL\tCOUNT"))
			for _, mt := range summary.MonthlyBreakdown {
				fmt.Fprintf(w, "%s\t%s\t%d\n", cli.MonthName(mt.Month), cli.FormatRupiah(mt.Total), mt.Count)
			}
			fmt.Fprintf(w, "TOTAL\t%s\t%d\n", cli.FormatRupiah(summary.TotalExpenses), summary.TransactionCount)
			_ = w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}
