// Package model defines the core data structures for the streamlens engine.
package model

import "fmt"

// FieldKind identifies one of the structured fields that can be extracted
// from a stream name.
type FieldKind string

// The closed set of extractable fields.
const (
	FieldTeam1  FieldKind = "team1"
	FieldTeam2  FieldKind = "team2"
	FieldDate   FieldKind = "date"
	FieldTime   FieldKind = "time"
	FieldLeague FieldKind = "league"
)

// AllFieldKinds returns every recognized field kind in display order.
func AllFieldKinds() []FieldKind {
	return []FieldKind{FieldTeam1, FieldTeam2, FieldDate, FieldTime, FieldLeague}
}

// ParseFieldKind converts a user-supplied field name into a FieldKind.
func ParseFieldKind(s string) (FieldKind, error) {
	switch FieldKind(s) {
	case FieldTeam1, FieldTeam2, FieldDate, FieldTime, FieldLeague:
		return FieldKind(s), nil
	}
	return "", fmt.Errorf("unknown field kind %q (expected team1, team2, date, time, or league)", s)
}

// Valid reports whether f is one of the recognized field kinds.
func (f FieldKind) Valid() bool {
	switch f {
	case FieldTeam1, FieldTeam2, FieldDate, FieldTime, FieldLeague:
		return true
	}
	return false
}
