package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anindyar/dompet/internal/cli"
	"github.com/anindyar/dompet/internal/config"
)

func backupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Back up the expense database",
		Long:  `Write a consistent snapshot of the database to a file. Safe to run while other commands are in use.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if output == "" {
				output = fmt.Sprintf("expenses_backup_%s.db", time.Now().Format("20060102_150405"))
			}
			output = config.ExpandPath(output)

			if err := store.Backup(ctx, output); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Backup written to " + output))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "backup file path (default: timestamped in current directory)")

	return cmd
}
