package pattern

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		subject string
		want    bool
	}{
		{
			name:    "plus sign matched literally",
			literal: "ESPN+",
			subject: "ESPN+ Replay",
			want:    true,
		},
		{
			name:    "plus sign does not quantify",
			literal: "ESPN+",
			subject: "ESPNNN Replay",
			want:    false,
		},
		{
			name:    "dot matched literally",
			literal: "vs.",
			subject: "Lakers vs. Celtics",
			want:    true,
		},
		{
			name:    "dot is not a wildcard",
			literal: "vs.",
			subject: "Lakers vsX Celtics",
			want:    false,
		},
		{
			name:    "parens and pipe neutralized",
			literal: "(A|B)",
			subject: "Game (A|B) Tonight",
			want:    true,
		},
		{
			name:    "pipe does not alternate",
			literal: "(A|B)",
			subject: "Game A Tonight",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := regexp.Compile(Escape(tt.literal))
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.MatchString(tt.subject))
		})
	}
}
