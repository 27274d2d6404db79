package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSlot_Active(t *testing.T) {
	tests := []struct {
		name string
		slot PatternSlot
		want bool
	}{
		{name: "enabled with pattern", slot: PatternSlot{Pattern: "NBA", Enabled: true}, want: true},
		{name: "disabled with pattern", slot: PatternSlot{Pattern: "NBA"}, want: false},
		{name: "enabled without pattern", slot: PatternSlot{Enabled: true}, want: false},
		{name: "zero value", slot: PatternSlot{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.slot.Active())
		})
	}
}

func TestPatternConfiguration_Slot(t *testing.T) {
	var cfg PatternConfiguration

	for _, name := range AllSlotNames() {
		slot := cfg.Slot(name)
		require.NotNil(t, slot, "slot %s", name)

		// The returned pointer aliases the configuration.
		slot.Pattern = string(name)
		assert.Equal(t, string(name), cfg.Slot(name).Pattern)
	}

	assert.Nil(t, cfg.Slot(SlotName("bogus")))
}

func TestPatternConfiguration_ExtractionSlotFor(t *testing.T) {
	var cfg PatternConfiguration

	assert.Same(t, &cfg.Teams, cfg.ExtractionSlotFor(FieldTeam1))
	assert.Same(t, &cfg.Teams, cfg.ExtractionSlotFor(FieldTeam2))
	assert.Same(t, &cfg.Date, cfg.ExtractionSlotFor(FieldDate))
	assert.Same(t, &cfg.Time, cfg.ExtractionSlotFor(FieldTime))
	assert.Same(t, &cfg.League, cfg.ExtractionSlotFor(FieldLeague))
	assert.Nil(t, cfg.ExtractionSlotFor(FieldKind("venue")))
}

func TestParseFieldKind(t *testing.T) {
	for _, f := range AllFieldKinds() {
		got, err := ParseFieldKind(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFieldKind("venue")
	assert.Error(t, err)
}

func TestCorpusSummary_Add(t *testing.T) {
	var s CorpusSummary
	s.Add(ClassificationResult{Tag: TagIncluded, Ranges: []MatchRange{{Start: 0, End: 3}}})
	s.Add(ClassificationResult{Tag: TagIncluded})
	s.Add(ClassificationResult{Tag: TagExcluded, Reason: ExcludedByIncludeMiss})
	s.Add(ClassificationResult{Tag: TagBuiltinFiltered})

	assert.Equal(t, CorpusSummary{
		Total:           4,
		Included:        2,
		Excluded:        1,
		BuiltinFiltered: 1,
		WithExtractions: 1,
	}, s)
}
