package pattern

import (
	"regexp"

	"github.com/streamlens/streamlens/internal/model"
)

// teamTemplate captures a team name: runs of word characters, spaces,
// periods, hyphens, and apostrophes, starting and ending on a word
// character. The continuation is lazy so a bare capture stops at the first
// word instead of swallowing trailing tokens; anchors or a following
// separator extend it across multi-word names.
const teamTemplate = `\w+(?:[ .'-]+\w+)*?`

// Capture templates for the non-team fields, picked by inspecting the
// selected text's own shape.
const (
	isoDateTemplate     = `\d{4}-\d{2}-\d{2}`
	slashDateTemplate   = `\d{1,2}/\d{1,2}(?:/\d{2,4})?`
	genericDateTemplate = `[\d/.\-]+`

	clockTemplate       = `\d{1,2}:\d{2}:\d{2}`
	meridiemTemplate    = `\d{1,2}:\d{2}\s*(?i:[ap]m)`
	genericTimeTemplate = `\d{1,2}:\d{2}(?::\d{2})?(?:\s*(?i:[ap]m))?`

	acronymLeagueTemplate = `[A-Z]{2,6}`
	genericLeagueTemplate = `[\w ]+`
)

// Shape detectors for selected text, compiled once.
var (
	isoDateShape   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashDateShape = regexp.MustCompile(`^\d{1,2}/\d{1,2}(?:/\d{2}(?:\d{2})?)?$`)
	clockShape     = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	meridiemShape  = regexp.MustCompile(`^\d{1,2}:\d{2}\s*(?i:[ap]m)$`)
	leagueShape    = regexp.MustCompile(`^[A-Z]{2,6}$`)
)

// Canonical separator tokens recognized as anchors around a capture. The
// before side must end exactly at the selection boundary ignoring trailing
// whitespace; the after side additionally accepts an opening parenthesis.
var (
	beforeAnchorRe = regexp.MustCompile(`(?i)(?:\b(?:vs|v)\.?|\bat|[@|:\x{2013}\x{2014}-])$`)
	afterAnchorRe  = regexp.MustCompile(`(?i)^(?:(?:vs|v)\b\.?|at\b|[@|:(\x{2013}\x{2014}-])`)
)

// pairSeparatorRe recognizes the trimmed between-teams substring as a
// canonical separator on its own.
var pairSeparatorRe = regexp.MustCompile(`^(?i:vs\.?|v\.?|at|[@\x{2013}\x{2014}-])$`)

// captureTemplate picks the capture template for a field kind given the
// text the operator selected. Unknown field kinds have no template.
func captureTemplate(field model.FieldKind, text string) string {
	switch field {
	case model.FieldTeam1, model.FieldTeam2:
		return teamTemplate
	case model.FieldDate:
		switch {
		case isoDateShape.MatchString(text):
			return isoDateTemplate
		case slashDateShape.MatchString(text):
			return slashDateTemplate
		default:
			return genericDateTemplate
		}
	case model.FieldTime:
		switch {
		case clockShape.MatchString(text):
			return clockTemplate
		case meridiemShape.MatchString(text):
			return meridiemTemplate
		default:
			return genericTimeTemplate
		}
	case model.FieldLeague:
		if leagueShape.MatchString(text) {
			return acronymLeagueTemplate
		}
		return genericLeagueTemplate
	}
	return ""
}
