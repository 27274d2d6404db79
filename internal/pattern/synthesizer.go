package pattern

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/streamlens/streamlens/internal/model"
)

// Synthesize derives a single-field capture pattern from a labeled example
// selection and the stream name it was taken from. It returns the empty
// string when the selection text is empty, is not a literal substring of
// sourceText, or carries an unknown field kind; callers must treat that as
// "leave the existing pattern alone", never as "clear it".
//
// The result contains exactly one named group whose name is the field kind,
// in the persisted (?P<name>...) dialect, optionally flanked by literal
// separator anchors detected in the surrounding context.
func Synthesize(sel model.TextSelection, sourceText string) string {
	if sel.Text == "" {
		return ""
	}
	idx := strings.Index(sourceText, sel.Text)
	if idx < 0 {
		return ""
	}

	template := captureTemplate(sel.Field, sel.Text)
	if template == "" {
		return ""
	}

	before := sourceText[:idx]
	after := sourceText[idx+len(sel.Text):]

	var b strings.Builder
	if anchor := detectBeforeAnchor(before); anchor != "" {
		b.WriteString(anchor)
		b.WriteString(`\s*`)
	}
	fmt.Fprintf(&b, "(?P<%s>%s)", sel.Field, template)
	if anchor := detectAfterAnchor(after); anchor != "" {
		b.WriteString(`\s*`)
		b.WriteString(anchor)
	}
	return b.String()
}

// detectBeforeAnchor looks for a canonical separator token ending exactly
// at the selection boundary, ignoring only trailing whitespace. The token
// is returned escaped, or empty if the context ends in ordinary text.
func detectBeforeAnchor(before string) string {
	trimmed := strings.TrimRightFunc(before, unicode.IsSpace)
	token := beforeAnchorRe.FindString(trimmed)
	if token == "" {
		return ""
	}
	return Escape(token)
}

// detectAfterAnchor is the symmetric check on the context immediately
// following the selection.
func detectAfterAnchor(after string) string {
	trimmed := strings.TrimLeftFunc(after, unicode.IsSpace)
	token := afterAnchorRe.FindString(trimmed)
	if token == "" {
		return ""
	}
	return Escape(token)
}
