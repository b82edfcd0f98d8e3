package datetime

import (
	"context"
	"strings"
	"time"

	"smart-quick-add/internal/model"
	"smart-quick-add/pkg/datemath"
	"smart-quick-add/pkg/log"
)

// Extractor finds the date span of a quick-add line and normalises it
// with the contextual rules.
type Extractor struct {
	parser DateParser
	l      log.Logger
}

// New creates an Extractor backed by parser.
func New(parser DateParser, l log.Logger) *Extractor {
	return &Extractor{
		parser: parser,
		l:      l,
	}
}

// Extract returns the span found in text relative to now, or false when the
// text holds no date.
func (e *Extractor) Extract(ctx context.Context, text string, now time.Time) (Span, bool) {
	matches := e.find(ctx, text, now)
	if len(matches) == 0 {
		return Span{}, false
	}

	first := matches[0]
	start := first.Start
	end := first.End
	texts := []string{first.Text}
	timed := first.HasClock

	// A clock stated apart from the day ("friday, call at 3pm") lands on that day.
	if !first.HasClock {
		for _, m := range matches[1:] {
			if !m.HasClock {
				continue
			}
			start = onDay(start, m.Start)
			if m.End != nil {
				shifted := start.Add(m.End.Sub(m.Start))
				end = &shifted
			}
			texts = append(texts, m.Text)
			timed = true
			break
		}
	}

	lower := strings.ToLower(text)
	original := start
	for _, rule := range contextRules {
		if !rule.re.MatchString(lower) {
			continue
		}
		start = rule.apply(start, now)
		if rule.setsClock {
			timed = true
		}
		e.l.Debugf(ctx, "datetime.Extractor.Extract: rule %s -> %s", rule.name, start.Format(time.RFC3339))
	}

	span := Span{
		Texts:      texts,
		Confidence: confidenceOf(texts),
		AllDay:     !timed && first.IsAllDay,
	}
	if end != nil {
		// The range keeps its length when the rules move its start.
		shiftedEnd := end.Add(start.Sub(original))
		span.Start = &start
		span.End = &shiftedEnd
	} else {
		span.Time = &start
	}
	return span, true
}

// find calls the parser, treating a panic as "no date".
func (e *Extractor) find(ctx context.Context, text string, now time.Time) (matches []datemath.Match) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Warnf(ctx, "datetime.Extractor.find: date parser panicked: %v", r)
			matches = nil
		}
	}()
	return e.parser.Find(text, now)
}

func confidenceOf(texts []string) model.Confidence {
	for _, t := range texts {
		if explicitClockRe.MatchString(t) {
			return model.ConfidenceHigh
		}
	}
	return model.ConfidenceMedium
}

func onDay(day, clock time.Time) time.Time {
	clock = clock.In(day.Location())
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, day.Location())
}
