package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/expense"
	"github.com/anindyar/dompet/internal/model"
)

func addCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Record a new expense",
		Long: `Record an expense against a category.

Amounts accept plain digits as well as formatted input such as "50,000" or
"Rp 100.000". The date defaults to today.`,
		Example: `  dompet add "Makanan & Minuman" 25000
  dompet add Transportasi 15000 --date 2025-08-14 --description "Ojek ke kantor"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if date == "" {
				date = time.Now().Format(model.DateLayout)
			}

			svc := expense.NewService(store)
			exp, err := svc.Create(ctx, expense.CreateParams{
				Date:        date,
				Category:    args[0],
				Amount:      args[1],
				Description: description,
			})
			if err != nil {
				return reportError(err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded expense #%d", exp.ID)))
			fmt.Printf("  %s  %s  %s\n",
				cli.FormatDate(exp.Date),
				cli.FormatCategory(exp.Category),
				cli.FormatRupiah(exp.Amount))

			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "expense date in YYYY-MM-DD format (default: today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "free-form note for the expense")

	return cmd
}
