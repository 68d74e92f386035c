package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/chart"
	"github.com/anindyar/dompet/internal/cli"
)

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render spending charts as PNG files",
	}

	cmd.AddCommand(chartPieCmd())
	cmd.AddCommand(chartTrendCmd())

	return cmd
}

func chartPieCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Category pie chart for a month",
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

			path, err := chart.NewService(chartDir()).CategoryPie(summary)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Chart saved to " + path))

			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "month (1-12, default: current month)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}

func chartTrendCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly spending trend line for a year",
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

			path, err := chart.NewService(chartDir()).MonthlyTrend(summary)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Chart saved to " + path))

			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year (default: current year)")

	return cmd
}
