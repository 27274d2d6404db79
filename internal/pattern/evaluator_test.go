package pattern

import (
	"testing"

	"github.com/streamlens/streamlens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Test(t *testing.T) {
	eval := NewEvaluator()

	tests := []struct {
		name    string
		pattern string
		subject string
		want    bool
	}{
		{
			name:    "simple containment",
			pattern: "NFL",
			subject: "NFL: Bears vs Packers",
			want:    true,
		},
		{
			name:    "no match",
			pattern: "NFL",
			subject: "NBA Game Tonight",
			want:    false,
		},
		{
			name:    "python named group accepted",
			pattern: `(?P<league>NBA|NFL)`,
			subject: "NBA Finals",
			want:    true,
		},
		{
			name:    "dotnet named group accepted via translation",
			pattern: `(?<league>NBA|NFL)`,
			subject: "NBA Finals",
			want:    true,
		},
		{
			name:    "invalid pattern fails closed",
			pattern: `(?P<team1>[unclosed`,
			subject: "Lakers vs Celtics",
			want:    false,
		},
		{
			name:    "lookbehind unsupported, fails closed",
			pattern: `(?<=foo)bar`,
			subject: "foobar",
			want:    false,
		},
		{
			name:    "empty pattern matches everything",
			pattern: "",
			subject: "anything",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eval.Test(tt.pattern, tt.subject))
		})
	}
}

func TestEvaluator_MatchRanges(t *testing.T) {
	eval := NewEvaluator()

	t.Run("overall and named group ranges", func(t *testing.T) {
		subject := "Lakers vs Celtics"
		ranges := eval.MatchRanges(`(?P<team1>Lakers) vs (?P<team2>Celtics)`, subject)
		require.Len(t, ranges, 3)

		assert.Equal(t, model.MatchRange{Start: 0, End: 17}, ranges[0])
		assert.Equal(t, model.MatchRange{Group: "team1", Start: 0, End: 6}, ranges[1])
		assert.Equal(t, model.MatchRange{Group: "team2", Start: 10, End: 17}, ranges[2])

		assert.Equal(t, "Lakers", subject[ranges[1].Start:ranges[1].End])
		assert.Equal(t, "Celtics", subject[ranges[2].Start:ranges[2].End])
	})

	t.Run("multiple non-overlapping matches leftmost first", func(t *testing.T) {
		ranges := eval.MatchRanges(`\d+`, "7:30 on 5/12")
		require.Len(t, ranges, 4)
		assert.Equal(t, 0, ranges[0].Start)
		assert.True(t, ranges[0].End <= ranges[1].Start)
	})

	t.Run("non-participating group omitted", func(t *testing.T) {
		ranges := eval.MatchRanges(`(?:(?P<a>x)|y)`, "y")
		require.Len(t, ranges, 1)
		assert.Empty(t, ranges[0].Group)
	})

	t.Run("invalid pattern yields empty", func(t *testing.T) {
		assert.Empty(t, eval.MatchRanges("[", "anything"))
	})

	t.Run("group name preserved exactly", func(t *testing.T) {
		ranges := eval.MatchRanges(`(?P<team1>\w+)`, "Lakers")
		require.Len(t, ranges, 2)
		assert.Equal(t, "team1", ranges[1].Group)
	})
}

func TestEvaluator_Deterministic(t *testing.T) {
	eval := NewEvaluator()
	first := eval.MatchRanges(`(?P<date>\d{4}-\d{2}-\d{2})`, "Game 2024-05-01 Live")
	second := eval.MatchRanges(`(?P<date>\d{4}-\d{2}-\d{2})`, "Game 2024-05-01 Live")
	assert.Equal(t, first, second)
}
