package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/anindyar/dompet/internal/common"
	"github.com/anindyar/dompet/internal/config"
	"github.com/anindyar/dompet/internal/storage"
)

// initStorage opens the configured database and applies pending migrations.
// The caller owns the returned storage and must Close it.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func exportDir() string {
	dir := viper.GetString("export.dir")
	if dir == "" {
		dir = config.DefaultExportDir
	}

	return config.ExpandPath(dir)
}

func chartDir() string {
	dir := viper.GetString("chart.dir")
	if dir == "" {
		dir = config.DefaultChartDir
	}

	return config.ExpandPath(dir)
}

// reportError rewrites user-facing errors into their friendly message so the
// underlying cause never leaks into terminal output.
func reportError(err error) error {
	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return errors.New(userErr.UserMessage)
	}

	return err
}
