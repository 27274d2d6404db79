package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/model"
)

// GetGroup retrieves a group and its pattern configuration by name.
// Returns common.ErrNotFound if the group does not exist.
func (s *SQLiteStorage) GetGroup(ctx context.Context, name string) (*model.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("group name cannot be empty")
	}

	query := `SELECT id, name,
		include_pattern, include_enabled,
		exclude_pattern, exclude_enabled,
		teams_pattern, teams_enabled,
		date_pattern, date_enabled,
		time_pattern, time_enabled,
		league_pattern, league_enabled,
		skip_builtin_filter,
		created_at, updated_at
	FROM groups WHERE name = ?`

	var g model.Group
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&g.ID, &g.Name,
		&g.Config.Include.Pattern, &g.Config.Include.Enabled,
		&g.Config.Exclude.Pattern, &g.Config.Exclude.Enabled,
		&g.Config.Teams.Pattern, &g.Config.Teams.Enabled,
		&g.Config.Date.Pattern, &g.Config.Date.Enabled,
		&g.Config.Time.Pattern, &g.Config.Time.Enabled,
		&g.Config.League.Pattern, &g.Config.League.Enabled,
		&g.Config.SkipBuiltinFilter,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %q: %w", name, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group %q: %w", name, err)
	}

	return &g, nil
}

// SaveGroupConfig writes a group's full pattern configuration in a single
// transaction, creating the group if it does not exist. The write is
// all-or-nothing; on any failure the previously stored configuration
// remains intact.
func (s *SQLiteStorage) SaveGroupConfig(ctx context.Context, name string, cfg model.PatternConfiguration) error {
	if name == "" {
		return fmt.Errorf("group name cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO groups (name,
		include_pattern, include_enabled,
		exclude_pattern, exclude_enabled,
		teams_pattern, teams_enabled,
		date_pattern, date_enabled,
		time_pattern, time_enabled,
		league_pattern, league_enabled,
		skip_builtin_filter)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		include_pattern = excluded.include_pattern,
		include_enabled = excluded.include_enabled,
		exclude_pattern = excluded.exclude_pattern,
		exclude_enabled = excluded.exclude_enabled,
		teams_pattern = excluded.teams_pattern,
		teams_enabled = excluded.teams_enabled,
		date_pattern = excluded.date_pattern,
		date_enabled = excluded.date_enabled,
		time_pattern = excluded.time_pattern,
		time_enabled = excluded.time_enabled,
		league_pattern = excluded.league_pattern,
		league_enabled = excluded.league_enabled,
		skip_builtin_filter = excluded.skip_builtin_filter,
		updated_at = CURRENT_TIMESTAMP`

	_, err = tx.ExecContext(ctx, query, name,
		cfg.Include.Pattern, cfg.Include.Enabled,
		cfg.Exclude.Pattern, cfg.Exclude.Enabled,
		cfg.Teams.Pattern, cfg.Teams.Enabled,
		cfg.Date.Pattern, cfg.Date.Enabled,
		cfg.Time.Pattern, cfg.Time.Enabled,
		cfg.League.Pattern, cfg.League.Enabled,
		cfg.SkipBuiltinFilter,
	)
	if err != nil {
		return fmt.Errorf("failed to save group %q: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit group %q: %w", name, err)
	}

	return nil
}

// ListGroups returns all stored groups ordered by name.
func (s *SQLiteStorage) ListGroups(ctx context.Context) ([]model.Group, error) {
	query := `SELECT id, name,
		include_pattern, include_enabled,
		exclude_pattern, exclude_enabled,
		teams_pattern, teams_enabled,
		date_pattern, date_enabled,
		time_pattern, time_enabled,
		league_pattern, league_enabled,
		skip_builtin_filter,
		created_at, updated_at
	FROM groups ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(
			&g.ID, &g.Name,
			&g.Config.Include.Pattern, &g.Config.Include.Enabled,
			&g.Config.Exclude.Pattern, &g.Config.Exclude.Enabled,
			&g.Config.Teams.Pattern, &g.Config.Teams.Enabled,
			&g.Config.Date.Pattern, &g.Config.Date.Enabled,
			&g.Config.Time.Pattern, &g.Config.Time.Enabled,
			&g.Config.League.Pattern, &g.Config.League.Enabled,
			&g.Config.SkipBuiltinFilter,
			&g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// DeleteGroup removes a stored group by name. Returns common.ErrNotFound if
// no such group exists.
func (s *SQLiteStorage) DeleteGroup(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM groups WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete group %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("group %q: %w", name, common.ErrNotFound)
	}
	return nil
}
