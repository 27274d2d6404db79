package model

// ClassificationTag is the outcome of classifying one stream name.
type ClassificationTag string

// Classification outcomes, in priority order.
const (
	// TagBuiltinFiltered marks streams caught by the placeholder or
	// unsupported-sport detectors.
	TagBuiltinFiltered ClassificationTag = "builtin_filtered"
	// TagExcluded marks streams rejected by the exclude pattern or by a
	// failed include match.
	TagExcluded ClassificationTag = "excluded"
	// TagIncluded marks streams that passed all filters.
	TagIncluded ClassificationTag = "included"
)

// ExclusionReason distinguishes why a stream was excluded.
type ExclusionReason string

// Exclusion reasons.
const (
	ExcludedByPattern     ExclusionReason = "exclude_pattern"
	ExcludedByIncludeMiss ExclusionReason = "include_mismatch"
)

// ClassificationResult is the derived outcome for one stream. It is
// recomputed from scratch whenever the stream or the configuration changes.
type ClassificationResult struct {
	Tag    ClassificationTag
	Reason ExclusionReason // set only when Tag is TagExcluded
	Ranges []MatchRange    // extraction highlights, set only when Tag is TagIncluded
}

// CorpusSummary tallies classification outcomes over a whole stream corpus.
type CorpusSummary struct {
	Total           int
	Included        int
	Excluded        int
	BuiltinFiltered int
	// WithExtractions counts included streams with at least one
	// extraction range.
	WithExtractions int
}

// Add folds one classification result into the summary.
func (s *CorpusSummary) Add(res ClassificationResult) {
	s.Total++
	switch res.Tag {
	case TagIncluded:
		s.Included++
		if len(res.Ranges) > 0 {
			s.WithExtractions++
		}
	case TagExcluded:
		s.Excluded++
	case TagBuiltinFiltered:
		s.BuiltinFiltered++
	}
}
