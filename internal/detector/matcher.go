package detector

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"smart-quick-add/internal/model"
)

// Rule is one row of a keyword table: any keyword found yields Value at Confidence.
type Rule[T any] struct {
	Value      T
	Confidence model.Confidence
	Keywords   []string
}

// FirstMatch walks rules in table order and returns a Detection for the first
// keyword contained in text. Table order decides, not position in the text.
func FirstMatch[T any](text string, rules []Rule[T]) (model.Detection[T], bool) {
	folded := fold(text)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(folded, fold(kw)) {
				return model.Detection[T]{
					Value:      r.Value,
					Confidence: r.Confidence,
					Evidence:   []string{kw},
				}, true
			}
		}
	}
	return model.Detection[T]{}, false
}

// fold case-folds s for caseless comparison. A Caser keeps state, so each
// call builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsWord reports whether word occurs in text delimited by non-word
// characters or the text edges, ignoring case.
func containsWord(text, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	return wordPattern(word).MatchString(text)
}

func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])` + regexp.QuoteMeta(word) + `(?:$|[^\p{L}\p{N}_])`)
}
