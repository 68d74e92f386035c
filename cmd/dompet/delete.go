package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/common"
	"github.com/anindyar/dompet/internal/expense"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Long:    `Delete an expense by id. Asks for confirmation unless --force is given.`,
		Args:    cobra.ExactArgs(1),
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

			if !force {
				exp, err := store.GetExpenseByID(ctx, id)
				if err != nil {
					return err
				}
				if exp == nil {
					return reportError(common.NewUserError(
						fmt.Sprintf("expense %d not found", id), common.ErrNotFound))
				}

				fmt.Printf("Delete %s %s %s? [y/N] ",
					cli.FormatDate(exp.Date),
					cli.FormatCategory(exp.Category),
					cli.FormatRupiah(exp.Amount))

				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println(cli.SubtleStyle.Render("Cancelled."))
					return nil
				}
			}

			svc := expense.NewService(store)
			if err := svc.Delete(ctx, id); err != nil {
				return reportError(err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted expense #%d", id)))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}
