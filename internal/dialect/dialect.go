// Package dialect translates between the persisted regex dialect and the
// syntax the host engine compiles.
//
// Persisted and exchanged pattern strings spell named capturing groups in
// the Python style, (?P<name>...). Go's regexp engine accepts that form
// natively, so translation here is normalization: the alternative
// (?<name>...) spelling is rewritten to the canonical form, and escapes and
// character classes are left untouched. Keeping the rewrite in one place
// means synthesis and classification never deal with dialect differences.
package dialect

import "strings"

// ToNative rewrites a pattern in the persisted dialect into the form the
// host regexp engine compiles. The rewrite is pure and never fails; a
// malformed pattern passes through unchanged and is rejected later at
// compile time.
func ToNative(pattern string) string {
	return normalizeNamedGroups(pattern)
}

// ToPersisted rewrites a host-engine pattern back into the persisted
// dialect. It is the inverse of ToNative over the persisted dialect:
// ToPersisted(ToNative(p)) == p for any p whose named groups already use
// the (?P<name>...) spelling.
func ToPersisted(pattern string) string {
	return normalizeNamedGroups(pattern)
}

// normalizeNamedGroups rewrites every (?<name>...) group opener to
// (?P<name>...), skipping escaped characters and character classes.
// Lookbehind openers (?<= and (?<! are left alone so they still fail at
// compile time rather than turning into nonsense named groups.
func normalizeNamedGroups(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))

	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			i++
			b.WriteByte(pattern[i])
			continue
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(' && strings.HasPrefix(pattern[i:], "(?<") &&
			!strings.HasPrefix(pattern[i:], "(?<=") &&
			!strings.HasPrefix(pattern[i:], "(?<!"):
			b.WriteString("(?P<")
			i += 2
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
