package datetime

import (
	"time"

	"smart-quick-add/internal/model"
)

// Span is the single date span extracted from a line of text.
// Exactly one of Time or Start is set; End is only set with Start.
type Span struct {
	Time       *time.Time
	Start      *time.Time
	End        *time.Time
	Texts      []string // literal substrings matched, in input order
	Confidence model.Confidence
	AllDay     bool
}

// Instant returns the point in time the span begins at.
func (s Span) Instant() time.Time {
	if s.Start != nil {
		return *s.Start
	}
	if s.Time != nil {
		return *s.Time
	}
	return time.Time{}
}

// IsRange reports whether the parser found both a start and an end.
func (s Span) IsRange() bool {
	return s.Start != nil && s.End != nil
}
