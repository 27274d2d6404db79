package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/config"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/storage"
)

// initStorage opens the group store with proper path expansion and runs
// migrations. The caller must Close it.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadOrEmptyConfig fetches a group's stored configuration, starting from an
// empty one when the group does not exist yet.
func loadOrEmptyConfig(ctx context.Context, store *storage.SQLiteStorage, group string) (model.PatternConfiguration, error) {
	g, err := store.GetGroup(ctx, group)
	switch {
	case err == nil:
		return g.Config, nil
	case errors.Is(err, common.ErrNotFound):
		return model.PatternConfiguration{}, nil
	default:
		return model.PatternConfiguration{}, err
	}
}
