// Package pattern derives and evaluates stream-name regex patterns.
//
// Synthesis works by example: the operator selects a piece of a rendered
// stream name, labels it with a field kind, and gets back a generalized
// named-capture pattern in the persisted (?P<name>...) dialect. Evaluation
// is deliberately forgiving: a half-typed pattern in a live preview must
// never surface an error, so invalid patterns behave as "no match".
package pattern

import "regexp"

// Escape returns a regex fragment that matches text literally and only
// literally. Every metacharacter in text is neutralized.
func Escape(text string) string {
	return regexp.QuoteMeta(text)
}
