package model

import "time"

// ItemType is the kind of item produced by the quick-add parser.
type ItemType string

const (
	ItemTypeReminder ItemType = "reminder"
	ItemTypeEvent    ItemType = "event"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeReminder || t == ItemTypeEvent
}

// Priority is the urgency level of an item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// priorityCycle is the order used when a person taps the priority badge.
var priorityCycle = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	for _, c := range priorityCycle {
		if c == p {
			return true
		}
	}
	return false
}

// Next returns the following priority in the cycle low→normal→high→urgent→low.
// Unknown values restart the cycle at low.
func (p Priority) Next() Priority {
	for i, c := range priorityCycle {
		if c == p {
			return priorityCycle[(i+1)%len(priorityCycle)]
		}
	}
	return PriorityLow
}

// Defaults applied when no detection fires for an axis.
const (
	DefaultItemType = ItemTypeReminder
	DefaultPriority = PriorityNormal
	DefaultTitle    = "Untitled"
)

// ParsedInput is the structured item derived from a line of quick-add text.
type ParsedInput struct {
	Title      string     `json:"title"`
	Type       ItemType   `json:"type"`
	Priority   Priority   `json:"priority"`
	Categories []string   `json:"categories"`
	Time       *time.Time `json:"time,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	AllDay     bool       `json:"all_day"`
	IsPublic   bool       `json:"is_public"`

	// RangeEnd holds the end of a stated range while the item is a reminder,
	// so it becomes EndTime again if the item turns into an event.
	RangeEnd *time.Time `json:"range_end,omitempty"`
}

// NewParsedInput returns a ParsedInput carrying every default.
func NewParsedInput() ParsedInput {
	return ParsedInput{
		Title:      DefaultTitle,
		Type:       DefaultItemType,
		Priority:   DefaultPriority,
		Categories: []string{},
	}
}

// HasCategory reports whether id is already in the category set.
func (p ParsedInput) HasCategory(id string) bool {
	for _, c := range p.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate the result freely.
func (p ParsedInput) Clone() ParsedInput {
	out := p
	out.Categories = append([]string{}, p.Categories...)
	out.Time = cloneTime(p.Time)
	out.StartTime = cloneTime(p.StartTime)
	out.EndTime = cloneTime(p.EndTime)
	out.RangeEnd = cloneTime(p.RangeEnd)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
