package quickadd

import (
	"time"

	"smart-quick-add/internal/model"
)

// Field names a badge that can be toggled on an applied ParsedInput.
type Field string

const (
	FieldType     Field = "type"
	FieldPriority Field = "priority"
	FieldPrivacy  Field = "privacy"
	FieldAllDay   Field = "all_day"
	FieldCategory Field = "category"
)

// Valid reports whether f can be toggled.
func (f Field) Valid() bool {
	switch f {
	case FieldType, FieldPriority, FieldPrivacy, FieldAllDay, FieldCategory:
		return true
	}
	return false
}

// --- Detections ---

// DateDetection is the date axis of a parse.
type DateDetection struct {
	Texts      []string         `json:"texts"`
	Confidence model.Confidence `json:"confidence"`
}

// Detections is the confidence-tagged signal set a parse was built from.
type Detections struct {
	Type       *model.Detection[model.ItemType] `json:"type,omitempty"`
	Priority   *model.Detection[model.Priority] `json:"priority,omitempty"`
	Visibility *model.Detection[bool]           `json:"visibility,omitempty"`
	Categories []model.Detection[string]        `json:"categories,omitempty"`
	Date       *DateDetection                   `json:"date,omitempty"`
}

// --- UseCase Inputs ---

type ParseInput struct {
	Text string
	Now  time.Time // zero means the current time
	// Categories overrides the configured category source when non-nil.
	Categories []model.CategoryDefinition
	Confirmed  model.ConfirmedSet
}

type ConfirmInput struct {
	Current     model.ParsedInput
	Suggestion  model.SmartSuggestion
	Suggestions []model.SmartSuggestion
}

type ToggleInput struct {
	Current    model.ParsedInput
	Field      Field
	CategoryID string
}

type SessionParseInput struct {
	SessionID string
	Text      string
	Now       time.Time
	// Seq orders keystrokes; an input older than the last accepted one is dropped.
	Seq int64
}

type SessionConfirmInput struct {
	SessionID  string
	Suggestion model.SmartSuggestion
}

type SessionToggleInput struct {
	SessionID  string
	Field      Field
	CategoryID string
}

// --- UseCase Outputs ---

type ParseOutput struct {
	ParsedInput model.ParsedInput
	Suggestions []model.SmartSuggestion
	Title       string
	Detections  Detections
}

type ConfirmOutput struct {
	ParsedInput model.ParsedInput
	Suggestions []model.SmartSuggestion
}

// Session is a snapshot of a compose session.
type Session struct {
	ID        string
	Seq       int64
	Text      string
	Confirmed []model.SuggestionKey
	Output    ParseOutput
	ExpiresAt time.Time
}
