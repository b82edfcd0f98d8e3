package detector

import (
	"context"
	"regexp"
	"strings"

	"smart-quick-add/internal/model"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)

// DetectCategories returns one Detection per matching category, Value being the category ID.
//
// Hashtags are exact caseless matches against the name or a keyword. Other
// categories match on their name or a keyword as a whole word (high), or on a
// keyword inside a noun reported by the tagger (medium).
func (d *Detector) DetectCategories(ctx context.Context, text string, categories []model.CategoryDefinition) []model.Detection[string] {
	var out []model.Detection[string]
	done := make(map[string]bool, len(categories))

	tags := hashtagRe.FindAllStringSubmatch(text, -1)
	for _, c := range categories {
		if tag, ok := hashtagFor(c, tags); ok {
			out = append(out, model.Detection[string]{
				Value:      c.ID,
				Confidence: model.ConfidenceHigh,
				Evidence:   []string{tag},
			})
			done[c.ID] = true
		}
	}

	var (
		nouns  []string
		tagged bool
	)
	for _, c := range categories {
		if done[c.ID] {
			continue
		}

		best := model.Detection[string]{Value: c.ID}
		if evidence := wholeWordEvidence(text, c); len(evidence) > 0 {
			best.Confidence, best.Evidence = model.ConfidenceHigh, evidence
		}

		// The tagger is only consulted while a stronger match is still possible.
		if model.ConfidenceMedium.Better(best.Confidence) {
			if !tagged {
				nouns = d.nouns(ctx, text)
				tagged = true
			}
			if evidence := nounEvidence(nouns, c); len(evidence) > 0 {
				best.Confidence, best.Evidence = model.ConfidenceMedium, evidence
			}
		}

		if len(best.Evidence) > 0 {
			out = append(out, best)
			done[c.ID] = true
		}
	}

	return out
}

func hashtagFor(c model.CategoryDefinition, tags [][]string) (string, bool) {
	for _, t := range tags {
		tag := fold(t[1])
		if c.Name != "" && tag == fold(c.Name) {
			return t[0], true
		}
		for _, kw := range c.MatchKeywords() {
			if tag == fold(kw) {
				return t[0], true
			}
		}
	}
	return "", false
}

func wholeWordEvidence(text string, c model.CategoryDefinition) []string {
	var evidence []string
	if containsWord(text, c.Name) {
		evidence = appendUnique(evidence, c.Name)
	}
	for _, kw := range c.MatchKeywords() {
		if containsWord(text, kw) {
			evidence = appendUnique(evidence, kw)
		}
	}
	return evidence
}

func nounEvidence(nouns []string, c model.CategoryDefinition) []string {
	var evidence []string
	for _, kw := range c.MatchKeywords() {
		k := fold(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		for _, n := range nouns {
			if strings.Contains(fold(n), k) {
				evidence = appendUnique(evidence, kw)
				break
			}
		}
	}
	return evidence
}

// nouns asks the tagger for nouns. A panicking tagger yields none.
func (d *Detector) nouns(ctx context.Context, text string) (nouns []string) {
	if d.tagger == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			d.l.Warnf(ctx, "detector.Detector.nouns: tagger panicked: %v", r)
			nouns = nil
		}
	}()
	return d.tagger.Nouns(text)
}

func appendUnique(list []string, s string) []string {
	for _, e := range list {
		if fold(e) == fold(s) {
			return list
		}
	}
	return append(list, s)
}
