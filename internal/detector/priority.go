package detector

import (
	"regexp"
	"strings"

	"smart-quick-add/internal/model"
)

var (
	priorityMarkerRe = regexp.MustCompile(`(?i)!(urgent|high|low|normal)\b`)
	// negationRe must run before the keyword tables: "not urgent" contains "urgent".
	// It covers every urgent-tier keyword so "not now" or "no rush" never reads as urgent.
	negationRe = regexp.MustCompile(`(?i)\b(?:not|no|non)[\s-]+(?:\w+\s+){0,2}(?:urgent|important|critical|priority|pressing|now|asap|immediately|emergency|crisis|rush|hurry|crucial|vital|essential)\b`)
)

// DetectPriority finds the priority level of text.
func DetectPriority(text string) (model.Detection[model.Priority], bool) {
	if m := priorityMarkerRe.FindStringSubmatch(text); m != nil {
		return model.Detection[model.Priority]{
			Value:      model.Priority(strings.ToLower(m[1])),
			Confidence: model.ConfidenceHigh,
			Evidence:   []string{m[0]},
		}, true
	}

	if m := negationRe.FindString(text); m != "" {
		return model.Detection[model.Priority]{
			Value:      model.PriorityLow,
			Confidence: model.ConfidenceHigh,
			Evidence:   []string{m},
		}, true
	}

	return FirstMatch(text, priorityRules)
}
