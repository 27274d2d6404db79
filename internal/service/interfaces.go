// Package service defines the collaborator interfaces and the editing
// session that ties synthesis, classification, and persistence together.
package service

import (
	"context"

	"github.com/streamlens/streamlens/internal/model"
)

// GroupStore seeds and persists group pattern configurations. Saves are
// atomic: a failed save leaves the previously stored configuration intact.
type GroupStore interface {
	GetGroup(ctx context.Context, name string) (*model.Group, error)
	SaveGroupConfig(ctx context.Context, name string, cfg model.PatternConfiguration) error
	ListGroups(ctx context.Context) ([]model.Group, error)
}
