package model

// SuggestionType names the axis a suggestion proposes a value for.
type SuggestionType string

const (
	SuggestionTypeType     SuggestionType = "type"
	SuggestionTypePriority SuggestionType = "priority"
	SuggestionTypeCategory SuggestionType = "category"
	SuggestionTypePrivacy  SuggestionType = "privacy"
)

// Privacy suggestion values.
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

// SmartSuggestion is a medium or low confidence detection awaiting confirmation.
type SmartSuggestion struct {
	Type       SuggestionType `json:"type"`
	Value      string         `json:"value"`
	Label      string         `json:"label"`
	Confidence Confidence     `json:"confidence"`
}

// Key identifies a suggestion across re-parses.
func (s SmartSuggestion) Key() SuggestionKey {
	return SuggestionKey{Type: s.Type, Value: s.Value}
}

// SuggestionKey is the (type, value) identity of a suggestion.
type SuggestionKey struct {
	Type  SuggestionType `json:"type"`
	Value string         `json:"value"`
}

// ConfirmedSet remembers suggestions confirmed during a compose session.
type ConfirmedSet map[SuggestionKey]struct{}

// Add records k as confirmed.
func (s ConfirmedSet) Add(k SuggestionKey) {
	s[k] = struct{}{}
}

// Has reports whether k was confirmed. A nil set has nothing.
func (s ConfirmedSet) Has(k SuggestionKey) bool {
	if s == nil {
		return false
	}
	_, ok := s[k]
	return ok
}

// Clone copies the set.
func (s ConfirmedSet) Clone() ConfirmedSet {
	out := make(ConfirmedSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Keys lists the confirmed pairs.
func (s ConfirmedSet) Keys() []SuggestionKey {
	out := make([]SuggestionKey, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
