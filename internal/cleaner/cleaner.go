// Package cleaner derives a human-readable title from quick-add text by
// removing everything the parser recognised.
package cleaner

import (
	"regexp"
	"strings"

	"smart-quick-add/internal/model"
)

var (
	// markerRe matches structural tokens that never belong in a title.
	markerRe     = regexp.MustCompile(`(?i)/(?:event|reminder)\b|!(?:urgent|high|low|normal)\b|#[\p{L}\p{N}_-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// orphanPunctRe catches separators left stranded by a removed word: "buy milk , eggs".
	orphanPunctRe = regexp.MustCompile(`\s+([,;:])`)

	// fillerRe is what a removed reminder verb leaves at the front: "remind me to pay" -> "me to pay".
	fillerRe = regexp.MustCompile(`(?i)^(?:me\s+)?to(?:\s+|$)`)
)

const edgePunctuation = " \t,;:-–—"

// fillerVerbs leave "me to" / "to" behind when removed.
var fillerVerbs = map[string]bool{
	"remind":       true,
	"reminder":     true,
	"remember":     true,
	"don't forget": true,
	"note to self": true,
}

// Clean strips markers, date literals and consumed keywords from input.
// Keywords are removed as whole words wherever they occur, so a keyword that
// is also the real subject ("dinner") is lost too. The result is never empty.
func Clean(input string, consumed []string, dateTexts []string) string {
	s := markerRe.ReplaceAllString(input, " ")

	for _, dt := range dateTexts {
		if strings.TrimSpace(dt) == "" {
			continue
		}
		s = regexp.MustCompile(`(?i)`+regexp.QuoteMeta(dt)).ReplaceAllString(s, " ")
	}

	for _, kw := range consumed {
		s = removeWord(s, kw)
	}

	s = whitespaceRe.ReplaceAllString(s, " ")
	s = orphanPunctRe.ReplaceAllString(s, "$1")
	s = strings.Trim(s, edgePunctuation)

	for hasFillerVerb(consumed) {
		next := strings.Trim(fillerRe.ReplaceAllString(s, ""), edgePunctuation)
		if next == s {
			break
		}
		s = next
	}

	if s == "" {
		return model.DefaultTitle
	}
	return s
}

func hasFillerVerb(consumed []string) bool {
	for _, kw := range consumed {
		if fillerVerbs[strings.ToLower(strings.TrimSpace(kw))] {
			return true
		}
	}
	return false
}

// removeWord deletes every whole-word, caseless occurrence of word.
func removeWord(s, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return s
	}
	re := regexp.MustCompile(`(?i)(^|[^\p{L}\p{N}_'])` + regexp.QuoteMeta(word) + `($|[^\p{L}\p{N}_'])`)
	// Adjacent occurrences share a delimiter, so one pass can miss every second one.
	for {
		next := re.ReplaceAllString(s, "${1} ${2}")
		if next == s {
			return s
		}
		s = next
	}
}
