package detector

import (
	"context"

	"smart-quick-add/internal/model"
	"smart-quick-add/pkg/log"
)

// NounTagger extracts nouns from text for medium-confidence category matches.
type NounTagger interface {
	Nouns(text string) []string
}

// Result holds every signal found in one line of text. Nil axes had no match.
type Result struct {
	Type       *model.Detection[model.ItemType]
	Priority   *model.Detection[model.Priority]
	Visibility *model.Detection[bool]
	Categories []model.Detection[string]
}

// Detector runs the signal detectors. Only category detection needs state.
type Detector struct {
	tagger NounTagger
	l      log.Logger
}

// New creates a Detector. tagger may be nil, which disables noun matching.
func New(tagger NounTagger, l log.Logger) *Detector {
	return &Detector{
		tagger: tagger,
		l:      l,
	}
}

// DetectAll runs the four detectors independently over text.
func (d *Detector) DetectAll(ctx context.Context, text string, categories []model.CategoryDefinition) Result {
	var r Result
	if det, ok := DetectType(text); ok {
		r.Type = &det
	}
	if det, ok := DetectPriority(text); ok {
		r.Priority = &det
	}
	if det, ok := DetectVisibility(text); ok {
		r.Visibility = &det
	}
	r.Categories = d.DetectCategories(ctx, text, categories)
	return r
}
