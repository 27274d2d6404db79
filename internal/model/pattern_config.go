package model

// SlotName identifies one of the six toggleable pattern slots in a group
// configuration.
type SlotName string

// The six pattern slots.
const (
	SlotInclude SlotName = "include"
	SlotExclude SlotName = "exclude"
	SlotTeams   SlotName = "teams"
	SlotDate    SlotName = "date"
	SlotTime    SlotName = "time"
	SlotLeague  SlotName = "league"
)

// AllSlotNames returns every slot in display order.
func AllSlotNames() []SlotName {
	return []SlotName{SlotInclude, SlotExclude, SlotTeams, SlotDate, SlotTime, SlotLeague}
}

// ExtractionOrder returns the extraction slots in the fixed order the
// classifier evaluates them.
func ExtractionOrder() []SlotName {
	return []SlotName{SlotTeams, SlotDate, SlotTime, SlotLeague}
}

// PatternSlot is one independently toggleable regex entry. An empty Pattern
// is the unset state; a disabled or unset slot contributes nothing to
// classification regardless of its stored text.
type PatternSlot struct {
	Pattern string
	Enabled bool
}

// Active reports whether the slot participates in classification.
func (s PatternSlot) Active() bool {
	return s.Enabled && s.Pattern != ""
}

// PatternConfiguration aggregates the six pattern slots plus the builtin
// filter override for one stream group. It is owned by the editing session
// until explicitly pushed to the group store.
type PatternConfiguration struct {
	Include PatternSlot
	Exclude PatternSlot
	Teams   PatternSlot
	Date    PatternSlot
	Time    PatternSlot
	League  PatternSlot

	// SkipBuiltinFilter bypasses the placeholder and unsupported-sport
	// detectors when true.
	SkipBuiltinFilter bool
}

// Slot returns a pointer to the named slot, or nil for an unknown name.
func (c *PatternConfiguration) Slot(name SlotName) *PatternSlot {
	switch name {
	case SlotInclude:
		return &c.Include
	case SlotExclude:
		return &c.Exclude
	case SlotTeams:
		return &c.Teams
	case SlotDate:
		return &c.Date
	case SlotTime:
		return &c.Time
	case SlotLeague:
		return &c.League
	}
	return nil
}

// ExtractionSlotFor returns the extraction slot that captures the given
// field. Both team fields live in the combined teams slot.
func (c *PatternConfiguration) ExtractionSlotFor(field FieldKind) *PatternSlot {
	switch field {
	case FieldTeam1, FieldTeam2:
		return &c.Teams
	case FieldDate:
		return &c.Date
	case FieldTime:
		return &c.Time
	case FieldLeague:
		return &c.League
	}
	return nil
}

// SlotFor maps a field kind to the name of the extraction slot that holds
// its pattern.
func SlotFor(field FieldKind) SlotName {
	switch field {
	case FieldTeam1, FieldTeam2:
		return SlotTeams
	case FieldDate:
		return SlotDate
	case FieldTime:
		return SlotTime
	case FieldLeague:
		return SlotLeague
	}
	return ""
}
