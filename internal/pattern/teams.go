package pattern

import (
	"fmt"
	"strings"

	"github.com/streamlens/streamlens/internal/model"
)

// genericPairSeparator matches the usual ways two team names are joined
// when the text between the example selections is not itself a recognizable
// separator.
const genericPairSeparator = `\s+(?:vs\.?|v\.?|@|at)\s+`

// SynthesizePair derives a combined two-team capture pattern from both team
// selections of the same stream name. It returns the empty string when
// either text is empty or absent from sourceText, when team1's first
// occurrence does not start strictly before team2's, or when the two
// occurrences overlap.
func SynthesizePair(team1Text, team2Text, sourceText string) string {
	if team1Text == "" || team2Text == "" {
		return ""
	}
	i1 := strings.Index(sourceText, team1Text)
	i2 := strings.Index(sourceText, team2Text)
	if i1 < 0 || i2 < 0 || i1 >= i2 {
		return ""
	}
	end1 := i1 + len(team1Text)
	if end1 > i2 {
		return ""
	}

	separator := pairSeparator(sourceText[end1:i2])
	return fmt.Sprintf("(?P<%s>%s)%s(?P<%s>%s)",
		model.FieldTeam1, teamTemplate,
		separator,
		model.FieldTeam2, teamTemplate)
}

// pairSeparator builds the separator fragment from the text found between
// the two team occurrences. A recognizable canonical token is kept
// literally; anything else falls back to the generic alternation.
func pairSeparator(between string) string {
	trimmed := strings.TrimSpace(between)
	if trimmed != "" && pairSeparatorRe.MatchString(trimmed) {
		return `\s*` + Escape(trimmed) + `\s*`
	}
	return genericPairSeparator
}
