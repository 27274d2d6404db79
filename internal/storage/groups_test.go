package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testConfig() model.PatternConfiguration {
	return model.PatternConfiguration{
		Include:           model.PatternSlot{Pattern: "NBA", Enabled: true},
		Exclude:           model.PatternSlot{Pattern: "Replay", Enabled: true},
		Teams:             model.PatternSlot{Pattern: `(?P<team1>\w+) vs (?P<team2>\w+)`, Enabled: true},
		Date:              model.PatternSlot{Pattern: `(?P<date>\d{4}-\d{2}-\d{2})`},
		SkipBuiltinFilter: true,
	}
}

func TestSaveAndGetGroup(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	cfg := testConfig()
	require.NoError(t, store.SaveGroupConfig(ctx, "nba-games", cfg))

	got, err := store.GetGroup(ctx, "nba-games")
	require.NoError(t, err)
	assert.Equal(t, "nba-games", got.Name)
	assert.Equal(t, cfg, got.Config)
	assert.NotZero(t, got.ID)
}

func TestSaveGroupConfig_Upsert(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGroupConfig(ctx, "g", testConfig()))

	updated := testConfig()
	updated.Include.Pattern = "NFL"
	updated.Date.Enabled = true
	require.NoError(t, store.SaveGroupConfig(ctx, "g", updated))

	got, err := store.GetGroup(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, updated, got.Config)

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1, "upsert must not create a second row")
}

func TestGetGroup_NotFound(t *testing.T) {
	store := setupTestStorage(t)

	_, err := store.GetGroup(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListGroups_Ordered(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGroupConfig(ctx, "zebra", model.PatternConfiguration{}))
	require.NoError(t, store.SaveGroupConfig(ctx, "alpha", model.PatternConfiguration{}))

	groups, err := store.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "alpha", groups[0].Name)
	assert.Equal(t, "zebra", groups[1].Name)
}

func TestDeleteGroup(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveGroupConfig(ctx, "g", model.PatternConfiguration{}))
	require.NoError(t, store.DeleteGroup(ctx, "g"))

	err := store.DeleteGroup(ctx, "g")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSaveGroupConfig_EmptyName(t *testing.T) {
	store := setupTestStorage(t)
	assert.Error(t, store.SaveGroupConfig(context.Background(), "", model.PatternConfiguration{}))
}
