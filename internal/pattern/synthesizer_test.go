package pattern

import (
	"testing"

	"github.com/streamlens/streamlens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture runs the synthesized pattern against the source and returns the
// text captured by the named group.
func capture(t *testing.T, pat, source, group string) string {
	t.Helper()
	eval := NewEvaluator()
	require.True(t, eval.Test(pat, source), "pattern %q should match %q", pat, source)

	for _, r := range eval.MatchRanges(pat, source) {
		if r.Group == group {
			return source[r.Start:r.End]
		}
	}
	t.Fatalf("group %q not captured by %q", group, pat)
	return ""
}

func TestSynthesize_Preconditions(t *testing.T) {
	tests := []struct {
		name   string
		sel    model.TextSelection
		source string
	}{
		{
			name:   "empty selection",
			sel:    model.TextSelection{Text: "", Field: model.FieldTeam1},
			source: "Lakers vs Celtics",
		},
		{
			name:   "text absent from source",
			sel:    model.TextSelection{Text: "Knicks", Field: model.FieldTeam1},
			source: "Lakers vs Celtics",
		},
		{
			name:   "unknown field kind",
			sel:    model.TextSelection{Text: "Lakers", Field: model.FieldKind("venue")},
			source: "Lakers vs Celtics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Synthesize(tt.sel, tt.source))
		})
	}
}

func TestSynthesize_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		field  model.FieldKind
		source string
	}{
		{
			name:   "team before separator",
			text:   "Lakers",
			field:  model.FieldTeam1,
			source: "Lakers vs Celtics 7:30 PM",
		},
		{
			name:   "team after separator",
			text:   "Celtics",
			field:  model.FieldTeam2,
			source: "Lakers vs Celtics 7:30 PM",
		},
		{
			name:   "team after at sign",
			text:   "Celtics",
			field:  model.FieldTeam2,
			source: "Lakers @ Celtics",
		},
		{
			name:   "iso date",
			text:   "2024-05-01",
			field:  model.FieldDate,
			source: "Game 2024-05-01 Live",
		},
		{
			name:   "slash date with year",
			text:   "5/12/2024",
			field:  model.FieldDate,
			source: "NBA 5/12/2024 Lakers vs Celtics",
		},
		{
			name:   "time with meridiem",
			text:   "7:30 PM",
			field:  model.FieldTime,
			source: "Lakers vs Celtics 7:30 PM ET",
		},
		{
			name:   "clock time",
			text:   "19:30:00",
			field:  model.FieldTime,
			source: "Kickoff 19:30:00 UTC",
		},
		{
			name:   "league acronym before colon",
			text:   "NBA",
			field:  model.FieldLeague,
			source: "NBA: Lakers vs Celtics",
		},
		{
			name:   "league in parentheses",
			text:   "NHL",
			field:  model.FieldLeague,
			source: "Bruins vs Rangers (NHL)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat := Synthesize(model.TextSelection{Text: tt.text, Field: tt.field}, tt.source)
			require.NotEmpty(t, pat)
			assert.Equal(t, tt.text, capture(t, pat, tt.source, string(tt.field)))
		})
	}
}

func TestSynthesize_DateShapes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "iso shape", text: "2024-05-01", want: `(?P<date>\d{4}-\d{2}-\d{2})`},
		{name: "slash shape", text: "5/12", want: `(?P<date>\d{1,2}/\d{1,2}(?:/\d{2,4})?)`},
		{name: "generic fallback", text: "05.12.2024", want: `(?P<date>[\d/.\-]+)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pat := Synthesize(model.TextSelection{Text: tt.text, Field: model.FieldDate}, "x "+tt.text+" y")
			assert.Equal(t, tt.want, pat)
		})
	}
}

func TestSynthesize_AnchorDetection(t *testing.T) {
	t.Run("separator must touch the selection boundary", func(t *testing.T) {
		// "Live" sits between the dash and the selection, so no anchor.
		pat := Synthesize(
			model.TextSelection{Text: "7:30 PM", Field: model.FieldTime},
			"Lakers - Live 7:30 PM",
		)
		assert.Equal(t, `(?P<time>\d{1,2}:\d{2}\s*(?i:[ap]m))`, pat)
	})

	t.Run("word token needs a word boundary", func(t *testing.T) {
		// "Wildcat" ends in "at" but is not the separator token.
		pat := Synthesize(
			model.TextSelection{Text: "7:30 PM", Field: model.FieldTime},
			"Wildcat 7:30 PM",
		)
		assert.Equal(t, `(?P<time>\d{1,2}:\d{2}\s*(?i:[ap]m))`, pat)
	})

	t.Run("pipe separator anchored before", func(t *testing.T) {
		pat := Synthesize(
			model.TextSelection{Text: "7:30 PM", Field: model.FieldTime},
			"Lakers vs Celtics | 7:30 PM",
		)
		assert.Equal(t, `\|\s*(?P<time>\d{1,2}:\d{2}\s*(?i:[ap]m))`, pat)
	})
}
