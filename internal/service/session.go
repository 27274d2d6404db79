package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamlens/streamlens/internal/classification"
	"github.com/streamlens/streamlens/internal/common"
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/pattern"
)

// Session owns one group's working pattern configuration for the duration
// of an editing session. All edits stay local until Apply pushes the whole
// configuration to the store in one write; Discard throws them away.
type Session struct {
	store      GroupStore
	classifier *classification.Classifier
	group      string
	streams    []string
	working    model.PatternConfiguration
	seeded     model.PatternConfiguration
}

// NewSession seeds a session from the stored group configuration. A group
// that does not exist yet starts from an empty configuration.
func NewSession(ctx context.Context, store GroupStore, group string, streams []string) (*Session, error) {
	if group == "" {
		return nil, fmt.Errorf("group name cannot be empty")
	}

	var cfg model.PatternConfiguration
	g, err := store.GetGroup(ctx, group)
	switch {
	case err == nil:
		cfg = g.Config
	case errors.Is(err, common.ErrNotFound):
		// New group, empty configuration.
	default:
		return nil, fmt.Errorf("failed to seed session: %w", err)
	}

	return &Session{
		store:      store,
		classifier: classification.NewClassifier(),
		group:      group,
		streams:    streams,
		working:    cfg,
		seeded:     cfg,
	}, nil
}

// Group returns the group name the session edits.
func (s *Session) Group() string {
	return s.group
}

// Streams returns the corpus the session previews against.
func (s *Session) Streams() []string {
	return s.streams
}

// Config returns a copy of the working configuration.
func (s *Session) Config() model.PatternConfiguration {
	return s.working
}

// SetSlotPattern replaces the named slot's pattern text, enabling the slot
// when the text is non-empty.
func (s *Session) SetSlotPattern(name model.SlotName, patternText string) error {
	slot := s.working.Slot(name)
	if slot == nil {
		return fmt.Errorf("unknown pattern slot %q", name)
	}
	slot.Pattern = patternText
	slot.Enabled = patternText != ""
	return nil
}

// SetSlotEnabled toggles the named slot without touching its pattern text.
func (s *Session) SetSlotEnabled(name model.SlotName, enabled bool) error {
	slot := s.working.Slot(name)
	if slot == nil {
		return fmt.Errorf("unknown pattern slot %q", name)
	}
	slot.Enabled = enabled
	return nil
}

// SetSkipBuiltinFilter toggles the builtin noise filter bypass.
func (s *Session) SetSkipBuiltinFilter(skip bool) {
	s.working.SkipBuiltinFilter = skip
}

// ApplySelection synthesizes a single-field pattern from a labeled example
// and merges it into the corresponding extraction slot. A failed synthesis
// returns common.ErrNoPattern and leaves the slot untouched.
func (s *Session) ApplySelection(sel model.TextSelection, sourceText string) error {
	derived := pattern.Synthesize(sel, sourceText)
	if derived == "" {
		return fmt.Errorf("field %s from %q: %w", sel.Field, sel.Text, common.ErrNoPattern)
	}
	slot := s.working.ExtractionSlotFor(sel.Field)
	slot.Pattern = derived
	slot.Enabled = true
	return nil
}

// ApplyTeamPair synthesizes the combined two-team pattern and merges it
// into the teams slot. A failed synthesis returns common.ErrNoPattern and
// leaves the slot untouched.
func (s *Session) ApplyTeamPair(team1Text, team2Text, sourceText string) error {
	derived := pattern.SynthesizePair(team1Text, team2Text, sourceText)
	if derived == "" {
		return fmt.Errorf("teams %q / %q: %w", team1Text, team2Text, common.ErrNoPattern)
	}
	s.working.Teams.Pattern = derived
	s.working.Teams.Enabled = true
	return nil
}

// Classify evaluates one stream name against the working configuration.
func (s *Session) Classify(streamName string) model.ClassificationResult {
	return s.classifier.Classify(streamName, &s.working)
}

// Preview re-evaluates the whole corpus against the working configuration.
func (s *Session) Preview() model.CorpusSummary {
	return s.classifier.Summarize(s.streams, &s.working)
}

// Apply pushes the working configuration to the store atomically. On
// success the saved state becomes the new baseline for Discard.
func (s *Session) Apply(ctx context.Context) error {
	if err := s.store.SaveGroupConfig(ctx, s.group, s.working); err != nil {
		return fmt.Errorf("failed to apply configuration: %w", err)
	}
	s.seeded = s.working
	return nil
}

// Discard resets the working configuration to the last seeded or applied
// state.
func (s *Session) Discard() {
	s.working = s.seeded
}
