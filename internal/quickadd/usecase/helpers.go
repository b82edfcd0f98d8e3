package usecase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"smart-quick-add/internal/model"
)

func suggestion(t model.SuggestionType, value, label string, c model.Confidence) model.SmartSuggestion {
	if label == "" {
		label = value
	}
	return model.SmartSuggestion{
		Type:       t,
		Value:      value,
		Label:      label,
		Confidence: c,
	}
}

// label turns an enum value into badge text: "urgent" -> "Urgent".
func label(value string) string {
	return cases.Title(language.English).String(value)
}

func privacyValue(public bool) string {
	if public {
		return model.PrivacyPublic
	}
	return model.PrivacyPrivate
}

// validSuggestion reports whether s names a value ConfirmSuggestion can apply.
func validSuggestion(s model.SmartSuggestion) bool {
	switch s.Type {
	case model.SuggestionTypeType:
		return model.ItemType(s.Value).Valid()
	case model.SuggestionTypePriority:
		return model.Priority(s.Value).Valid()
	case model.SuggestionTypePrivacy:
		return s.Value == model.PrivacyPublic || s.Value == model.PrivacyPrivate
	case model.SuggestionTypeCategory:
		return s.Value != ""
	}
	return false
}
