// Package classification applies a group's pattern configuration to stream
// names, mirroring the server-side matching order so the live preview is
// predictive of production behavior.
package classification

import "regexp"

// Builtin noise detectors, process-wide and compiled once. The keyword
// lists approximate the authoritative backend filters; keep them in sync
// when the backend lists change.
var (
	// placeholderRegex flags schedule filler rather than real events.
	placeholderRegex = regexp.MustCompile(
		`(?i)(?:\b(?:coming soon|off air|no broadcast|TBA|placeholder)\b|\bESPN\+)`)

	// unsupportedSportRegex flags sports the system does not map.
	unsupportedSportRegex = regexp.MustCompile(
		`(?i)\b(?:swimming|diving|gymnastics|water polo|equestrian|sailing|rowing|fencing|archery|shooting|triathlon|pentathlon|surfing|skateboarding|climbing|canoe|kayak)\b`)
)

// builtinFiltered reports whether a stream name is caught by either builtin
// detector.
func builtinFiltered(streamName string) bool {
	return placeholderRegex.MatchString(streamName) ||
		unsupportedSportRegex.MatchString(streamName)
}
