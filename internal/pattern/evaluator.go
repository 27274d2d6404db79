package pattern

import (
	"regexp"
	"sync"

	"github.com/streamlens/streamlens/internal/dialect"
	"github.com/streamlens/streamlens/internal/model"
)

// Evaluator compiles and evaluates user-authored patterns. Compiles are
// memoized per pattern text, so re-running a corpus against an unchanged
// configuration never recompiles. A failed compile is cached too and
// behaves as "no match" everywhere.
type Evaluator struct {
	compiled map[string]*regexp.Regexp
	mu       sync.Mutex
}

// NewEvaluator creates an empty evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		compiled: make(map[string]*regexp.Regexp),
	}
}

// Test reports whether pattern matches anywhere in subject. Invalid
// patterns never match.
func (e *Evaluator) Test(pattern, subject string) bool {
	re := e.compile(pattern)
	if re == nil {
		return false
	}
	return re.MatchString(subject)
}

// MatchRanges returns the overall range of every non-overlapping match of
// pattern in subject, leftmost first, plus a labeled range for every named
// capturing group that participated in the match. Invalid patterns yield
// an empty sequence.
func (e *Evaluator) MatchRanges(pattern, subject string) []model.MatchRange {
	re := e.compile(pattern)
	if re == nil {
		return nil
	}

	names := re.SubexpNames()
	var ranges []model.MatchRange
	for _, idx := range re.FindAllStringSubmatchIndex(subject, -1) {
		ranges = append(ranges, model.MatchRange{Start: idx[0], End: idx[1]})

		for g := 1; g < len(names); g++ {
			if names[g] == "" {
				continue
			}
			// A group that did not participate reports -1 offsets.
			if 2*g+1 >= len(idx) || idx[2*g] < 0 {
				continue
			}
			ranges = append(ranges, model.MatchRange{
				Group: names[g],
				Start: idx[2*g],
				End:   idx[2*g+1],
			})
		}
	}
	return ranges
}

// compile returns the compiled form of pattern, or nil if the pattern does
// not compile even after dialect translation.
func (e *Evaluator) compile(pattern string) *regexp.Regexp {
	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.compiled[pattern]; ok {
		return re
	}

	re, err := regexp.Compile(dialect.ToNative(pattern))
	if err != nil {
		re = nil
	}
	e.compiled[pattern] = re
	return re
}
