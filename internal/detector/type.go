package detector

import (
	"regexp"
	"strings"

	"smart-quick-add/internal/model"
)

var typeMarkerRe = regexp.MustCompile(`(?i)/(event|reminder)\b`)

// DetectType decides between event and reminder.
//
// An explicit /event or /reminder marker wins outright. Otherwise reminder
// keywords take precedence over event keywords, and a reminder hit is always
// applied at high confidence whatever its table tier.
func DetectType(text string) (model.Detection[model.ItemType], bool) {
	if m := typeMarkerRe.FindStringSubmatch(text); m != nil {
		return model.Detection[model.ItemType]{
			Value:      model.ItemType(strings.ToLower(m[1])),
			Confidence: model.ConfidenceHigh,
			Evidence:   []string{m[0]},
		}, true
	}

	if d, ok := FirstMatch(text, reminderRules); ok {
		return coerceReminder(d), true
	}

	return FirstMatch(text, eventRules)
}

// coerceReminder is the override step for reminder keywords: they are
// auto-applied even when found in a medium or low tier.
func coerceReminder(d model.Detection[model.ItemType]) model.Detection[model.ItemType] {
	d.Confidence = model.ConfidenceHigh
	return d
}
