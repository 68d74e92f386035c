package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/common"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return err
			}

			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories defined."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, cli.HeaderStyle.Render("NAME\tBUDGET\tDESCRIPTION"))
			for i := range categories {
				cat := &categories[i]

				budget := "-"
				if cat.BudgetLimit > 0 {
					budget = cli.FormatRupiah(cat.BudgetLimit)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\n", cli.FormatCategory(cat.Name), budget, cat.Description)
			}
			_ = w.Flush()

			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		description string
		budget      float64
	)

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Create a new category",
		Example: `  dompet categories add Olahraga --description "Gym dan futsal" --budget 300000`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			existing, err := store.GetCategoryByName(ctx, args[0])
			if err != nil {
				return err
			}
			if existing != nil {
				return reportError(common.NewUserError(
					fmt.Sprintf("category %q already exists", args[0]), common.ErrDuplicateEntry))
			}

			cat, err := store.CreateCategory(ctx, args[0], description, budget)
			if err != nil {
				return reportError(err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Created category %s", cat.Name)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "m", "", "what the category covers")
	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "optional monthly budget limit")

	return cmd
}
