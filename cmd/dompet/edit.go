package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/common"
	"github.com/anindyar/dompet/internal/expense"
	"github.com/anindyar/dompet/internal/model"
)

func editCmd() *cobra.Command {
	var (
		date        string
		category    string
		amount      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long:  `Edit an expense by id. Fields not passed as flags keep their current value.`,
		Example: `  dompet edit 12 --amount 75000
  dompet edit 12 --category Hiburan --description "Tiket bioskop"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id: %s", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			current, err := store.GetExpenseByID(ctx, id)
			if err != nil {
				return err
			}
			if current == nil {
				return reportError(common.NewUserError(
					fmt.Sprintf("expense %d not found", id), common.ErrNotFound))
			}

			params := expense.CreateParams{
				Date:        current.Date.Format(model.DateLayout),
				Category:    current.Category,
				Amount:      strconv.FormatFloat(current.Amount, 'f', -1, 64),
				Description: current.Description,
			}
			if cmd.Flags().Changed("date") {
				params.Date = date
			}
			if cmd.Flags().Changed("category") {
				params.Category = category
			}
			if cmd.Flags().Changed("amount") {
				params.Amount = amount
			}
			if cmd.Flags().Changed("description") {
				params.Description = description
			}

			svc := expense.NewService(store)
			if err := svc.Update(ctx, id, params); err != nil {
				return reportError(err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Updated expense #%d", id)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "new date in YYYY-MM-DD format")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&description, "description", "m", "", "new description")

	return cmd
}
