package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/export"
	"github.com/anindyar/dompet/internal/service"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV or Excel",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportExcelCmd())
	cmd.AddCommand(exportReportCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	var (
		month  int
		year   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export expenses to a CSV file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.GetExpenses(ctx, service.ExpenseFilter{Month: month, Year: year})
			if err != nil {
				return err
			}

			path, err := export.NewService(exportDir()).ExportCSV(expenses, output)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d expenses to %s", len(expenses), path)))

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "only export this month (1-12, requires --year)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "only export this year")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output filename (default: timestamped)")

	return cmd
}

func exportExcelCmd() *cobra.Command {
	var (
		month  int
		year   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "excel",
		Short: "Export expenses to an Excel workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			expenses, err := store.GetExpenses(ctx, service.ExpenseFilter{Month: month, Year: year})
			if err != nil {
				return err
			}

			path, err := export.NewService(exportDir()).ExportExcel(expenses, output)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d expenses to %s", len(expenses), path)))

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "only export this month (1-12, requires --year)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "only export this year")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output filename (default: timestamped)")

	return cmd
}

func exportReportCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a monthly report workbook",
		Long:  `Build an Excel report with summary, per-category, and transaction detail sheets for one month.`,
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

			expenses, err := store.GetExpenses(ctx, service.ExpenseFilter{Month: month, Year: year})
			if err != nil {
				return err
			}

			path, err := export.NewService(exportDir()).ExportMonthlyReport(summary, expenses)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Wrote report for %s %d to %s", cli.MonthName(month), year, path)))

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default: current month)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}
