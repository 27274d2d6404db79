package model

import "time"

// Group is a stored stream group with its pattern configuration.
type Group struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Config    PatternConfiguration
	ID        int64
}
