package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/expense"
	"github.com/anindyar/dompet/internal/model"
	"github.com/anindyar/dompet/internal/service"
)

func listCmd() *cobra.Command {
	var (
		category string
		month    int
		year     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded expenses",
		Long: `List expenses, newest first.

Filters combine: --month implies the current year unless --year is also given.`,
		Example: `  dompet list
  dompet list --month 8 --year 2025
  dompet list --category Transportasi --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if month != 0 && year == 0 {
				year = time.Now().Year()
			}

			svc := expense.NewService(store)
			expenses, err := svc.History(ctx, service.ExpenseFilter{
				Category: category,
				Month:    month,
				Year:     year,
				Limit:    limit,
			})
			if err != nil {
				return reportError(err)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses found."))
				return nil
			}

			printExpenseTable(expenses)

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show expenses in this category")
	cmd.Flags().IntVarP(&month, "month", "m", 0, "filter by month (1-12)")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "filter by year")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of expenses to show")

	return cmd
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, cli.HeaderStyle.Render("ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION"))

	var total float64
	for i := range expenses {
		exp := &expenses[i]
		total += exp.Amount

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			exp.ID,
			cli.FormatDate(exp.Date),
			cli.FormatCategory(exp.Category),
			cli.FormatRupiah(exp.Amount),
			exp.Description)
	}

	fmt.Fprintf(w, "\t\t\t%s\t(%d expenses)\n", cli.FormatRupiah(total), len(expenses))
	_ = w.Flush()
}
