package datemath

import (
	"regexp"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var explicitClockRe = regexp.MustCompile(`(?i)\d{1,2}(?::\d{2})?\s*[ap]\.?m\b|\d{1,2}:\d{2}|\b(?:noon|midday|midnight)\b`)

// WhenParser finds spans with the olebedev/when rule set. It trades the
// contextual phrases Parser knows for when's broader English coverage.
type WhenParser struct {
	w           *when.Parser
	location    *time.Location
	defaultHour int
}

// NewWhenParser builds a when-backed finder for the given IANA timezone.
func NewWhenParser(timezone string, opts ...Option) (*WhenParser, error) {
	p, err := NewParser(timezone, opts...)
	if err != nil {
		return nil, err
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &WhenParser{w: w, location: p.location, defaultHour: p.defaultHour}, nil
}

// Find returns every span when recognises, scanning left to right.
func (wp *WhenParser) Find(text string, baseTime time.Time) []Match {
	base := baseTime.In(wp.location)

	var matches []Match
	offset := 0
	for offset < len(text) {
		r, err := wp.w.Parse(text[offset:], base)
		if err != nil || r == nil || r.Text == "" {
			break
		}

		m := Match{
			Text:  r.Text,
			Index: offset + r.Index,
			Start: r.Time.In(wp.location),
		}
		if explicitClockRe.MatchString(r.Text) {
			m.HasClock = true
		} else {
			s := m.Start
			m.Start = time.Date(s.Year(), s.Month(), s.Day(), wp.defaultHour, 0, 0, 0, wp.location)
			m.IsAllDay = true
		}
		matches = append(matches, m)

		offset += r.Index + len(r.Text)
	}
	return matches
}
