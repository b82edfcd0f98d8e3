package datetime

import (
	"regexp"
	"time"
)

// contextRule rewrites a parsed time when its pattern appears anywhere in the input.
type contextRule struct {
	name string
	re   *regexp.Regexp
	// setsClock marks rules that pin a time of day, which makes the span timed.
	setsClock bool
	apply     func(t, now time.Time) time.Time
}

var explicitClockRe = regexp.MustCompile(`(?i)\d+\s?(?:am|pm)\b|\d{1,2}:\d{2}`)

// contextRules run in this order; every matching rule fires.
var contextRules = []contextRule{
	{
		name: "next_business_day",
		re:   regexp.MustCompile(`\bnext (?:business|working) day\b`),
		apply: func(t, _ time.Time) time.Time {
			t = t.AddDate(0, 0, 1)
			for t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
				t = t.AddDate(0, 0, 1)
			}
			return t
		},
	},
	{name: "afternoon", re: regexp.MustCompile(`\bafternoon\b`), setsClock: true, apply: setClock(14, 0)},
	{name: "morning", re: regexp.MustCompile(`\bmorning\b`), setsClock: true, apply: setClock(9, 0)},
	{name: "evening", re: regexp.MustCompile(`\b(?:evening|tonight)\b`), setsClock: true, apply: setClock(18, 0)},
	{name: "end_of_day", re: regexp.MustCompile(`\b(?:end of (?:the )?day|eod)\b`), setsClock: true, apply: setClock(17, 0)},
	{name: "start_of_day", re: regexp.MustCompile(`\b(?:start of (?:the )?day|first thing)\b`), setsClock: true, apply: setClock(8, 0)},
	{
		name:      "end_of_week",
		re:        regexp.MustCompile(`\b(?:end of (?:the )?week|eow|friday)\b`),
		setsClock: true,
		apply: func(t, now time.Time) time.Time {
			now = now.In(t.Location())
			days := (int(time.Friday) - int(now.Weekday()) + 7) % 7
			if days == 0 {
				days = 7
			}
			d := now.AddDate(0, 0, days)
			return time.Date(d.Year(), d.Month(), d.Day(), 17, 0, 0, 0, t.Location())
		},
	},
	{
		name: "next_week_same_time",
		re:   regexp.MustCompile(`\b(?:next week same time|same time next week)\b`),
		apply: func(t, _ time.Time) time.Time {
			return t.AddDate(0, 0, 7)
		},
	},
	{
		name: "yesterday",
		re:   regexp.MustCompile(`\byesterday\b`),
		apply: func(t, now time.Time) time.Time {
			if t.Before(startOfDay(now.In(t.Location()))) {
				return t
			}
			return t.AddDate(0, 0, -1)
		},
	},
}

func setClock(hour, minute int) func(t, _ time.Time) time.Time {
	return func(t, _ time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
