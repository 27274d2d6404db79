package classification

import (
	"github.com/streamlens/streamlens/internal/model"
	"github.com/streamlens/streamlens/internal/pattern"
)

// Classifier evaluates stream names against a pattern configuration. It is
// pure and deterministic; the embedded evaluator only memoizes compiles.
type Classifier struct {
	eval *pattern.Evaluator
}

// NewClassifier creates a classifier with a fresh pattern evaluator.
func NewClassifier() *Classifier {
	return &Classifier{eval: pattern.NewEvaluator()}
}

// Classify applies the builtin noise filter, then the exclude and include
// filters, then field extraction, in that fixed priority order.
func (c *Classifier) Classify(streamName string, cfg *model.PatternConfiguration) model.ClassificationResult {
	if !cfg.SkipBuiltinFilter && builtinFiltered(streamName) {
		return model.ClassificationResult{Tag: model.TagBuiltinFiltered}
	}

	if cfg.Exclude.Active() && c.eval.Test(cfg.Exclude.Pattern, streamName) {
		return model.ClassificationResult{
			Tag:    model.TagExcluded,
			Reason: model.ExcludedByPattern,
		}
	}

	if cfg.Include.Active() && !c.eval.Test(cfg.Include.Pattern, streamName) {
		return model.ClassificationResult{
			Tag:    model.TagExcluded,
			Reason: model.ExcludedByIncludeMiss,
		}
	}

	result := model.ClassificationResult{Tag: model.TagIncluded}
	for _, name := range model.ExtractionOrder() {
		slot := cfg.Slot(name)
		if !slot.Active() {
			continue
		}
		// Slots are evaluated independently; overlapping ranges from
		// different slots are all preserved.
		for _, r := range c.eval.MatchRanges(slot.Pattern, streamName) {
			if r.Group == "" {
				// An overall match from a pattern without its own
				// named group still gets colored as the slot's field.
				r.Group = string(name)
			}
			result.Ranges = append(result.Ranges, r)
		}
	}
	return result
}
