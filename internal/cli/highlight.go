package cli

import (
	"sort"
	"strings"

	"github.com/streamlens/streamlens/internal/model"
)

// RenderHighlights paints extraction ranges onto a stream name. Ranges from
// different slots may overlap; segments covered by more than one range are
// colored by the most specific one, preferring named-field ranges over
// overall slot ranges.
func RenderHighlights(streamName string, ranges []model.MatchRange) string {
	if len(ranges) == 0 {
		return streamName
	}

	// Segment the string at every range boundary, then style each segment
	// by its covering range.
	cuts := map[int]bool{0: true, len(streamName): true}
	for _, r := range ranges {
		if r.Start < 0 || r.End > len(streamName) || r.Start >= r.End {
			continue
		}
		cuts[r.Start] = true
		cuts[r.End] = true
	}

	offsets := make([]int, 0, len(cuts))
	for off := range cuts {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	var b strings.Builder
	for i := 0; i+1 < len(offsets); i++ {
		start, end := offsets[i], offsets[i+1]
		segment := streamName[start:end]

		if label, ok := coveringLabel(ranges, start, end); ok {
			b.WriteString(FieldStyle(label).Render(segment))
		} else {
			b.WriteString(segment)
		}
	}
	return b.String()
}

// coveringLabel picks the label that should color the [start, end) segment.
// A named-field range wins over an overall slot range; among equals the
// earlier range in slot order wins.
func coveringLabel(ranges []model.MatchRange, start, end int) (string, bool) {
	var (
		label string
		found bool
		named bool
	)
	for _, r := range ranges {
		if r.Start > start || r.End < end {
			continue
		}
		isNamed := model.FieldKind(r.Group).Valid()
		if !found || (isNamed && !named) {
			label = r.Group
			found = true
			named = isNamed
		}
	}
	return label, found
}
