package model

// TextSelection is a labeled example captured from a rendered stream name.
// It is ephemeral: created when the operator selects text, consumed by a
// single synthesizer call, never persisted.
type TextSelection struct {
	Text  string
	Field FieldKind
}

// MatchRange is a half-open [Start, End) byte span into a subject string.
// Group labels which field or pattern slot produced the range; it is empty
// for an overall (unnamed) match.
type MatchRange struct {
	Group string
	Start int
	End   int
}
