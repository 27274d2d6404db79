package classification

import "github.com/streamlens/streamlens/internal/model"

// Summarize classifies every stream once and tallies the outcomes. One pass,
// linear in corpus size times the number of enabled slots.
func (c *Classifier) Summarize(streams []string, cfg *model.PatternConfiguration) model.CorpusSummary {
	var summary model.CorpusSummary
	for _, name := range streams {
		summary.Add(c.Classify(name, cfg))
	}
	return summary
}

// SummarizeFunc is Summarize with a per-stream progress hook, for callers
// driving a progress display over large corpora. onStream may be nil.
func (c *Classifier) SummarizeFunc(streams []string, cfg *model.PatternConfiguration, onStream func(done int)) model.CorpusSummary {
	var summary model.CorpusSummary
	for i, name := range streams {
		summary.Add(c.Classify(name, cfg))
		if onStream != nil {
			onStream(i + 1)
		}
	}
	return summary
}
