package datemath

import (
	"regexp"
	"strings"
	"time"
)

type dayRule struct {
	re      *regexp.Regexp
	resolve func(p *Parser, groups []string, base time.Time) (token, bool)
}

type clockRule struct {
	re      *regexp.Regexp
	resolve func(groups []string) (token, bool)
}

const monthPattern = `(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sept?(?:ember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var partOfDayRe = regexp.MustCompile(`(?i)\b(?:this\s+)?(?:morning|afternoon|evening)\b`)

// offsetDay resolves a phrase that is a fixed number of days from base.
func offsetDay(days int) func(*Parser, []string, time.Time) (token, bool) {
	return func(p *Parser, _ []string, base time.Time) (token, bool) {
		return token{day: p.startOfDay(base.AddDate(0, 0, days))}, true
	}
}

// relative delegates to Parse for phrases it already understands.
func relative(p *Parser, groups []string, base time.Time) (token, bool) {
	t, err := p.Parse(lower(groups[0]), base)
	if err != nil {
		return token{}, false
	}
	tok := token{day: p.startOfDay(t)}
	if !t.Equal(tok.day) {
		tok.instant = &t
	}
	return tok, true
}

var dayRules = []dayRule{
	{re: regexp.MustCompile(`(?i)\bday after tomorrow\b`), resolve: offsetDay(2)},
	{re: regexp.MustCompile(`(?i)\b(?:today|tonight)\b`), resolve: offsetDay(0)},
	{re: regexp.MustCompile(`(?i)\b(?:tomorrow|tmrw|tmr)\b`), resolve: offsetDay(1)},
	{re: regexp.MustCompile(`(?i)\byesterday\b`), resolve: offsetDay(-1)},
	// Contextual anchors resolve to the reference day; callers apply the shift.
	{re: regexp.MustCompile(`(?i)\bnext\s+(?:business|working)\s+day\b`), resolve: offsetDay(0)},
	{re: regexp.MustCompile(`(?i)\b(?:end\s+of\s+(?:the\s+)?day|eod)\b`), resolve: offsetDay(0)},
	{re: regexp.MustCompile(`(?i)\b(?:start\s+of\s+(?:the\s+)?day|first\s+thing(?:\s+in\s+the\s+morning)?)\b`), resolve: offsetDay(0)},
	{re: regexp.MustCompile(`(?i)\b(?:end\s+of\s+(?:the\s+)?week|eow)\b`), resolve: offsetDay(0)},
	{
		re: regexp.MustCompile(`(?i)\b(?:next\s+week\s+same\s+time|same\s+time\s+next\s+week)\b`),
		resolve: func(p *Parser, _ []string, base time.Time) (token, bool) {
			b := base
			return token{day: p.startOfDay(base), instant: &b}, true
		},
	},
	{re: regexp.MustCompile(`(?i)\bin (\d+|an?) (minutes|minute|mins|min|hours|hour|hrs|hr|days|day|weeks|week|months|month)\b`), resolve: relative},
	{re: regexp.MustCompile(`(?i)\bnext (?:week|month)\b`), resolve: relative},
	{re: regexp.MustCompile(`(?i)\b(?:(?:this|next|on) )?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`), resolve: relative},
	{
		re: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		resolve: func(p *Parser, g []string, base time.Time) (token, bool) {
			return p.calendarDay(atoi(g[1]), time.Month(atoi(g[2])), atoi(g[3]), base)
		},
	},
	{
		re: regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2}|\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (token, bool) {
			return p.calendarDay(fullYear(g[3]), time.Month(atoi(g[1])), atoi(g[2]), base)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b` + monthPattern + `\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (token, bool) {
			return p.calendarDay(atoi(g[3]), monthOf(g[1]), atoi(g[2]), base)
		},
	},
	{
		re: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?(?:\s+of)?\s+` + monthPattern + `(?:,?\s+(\d{4}))?\b`),
		resolve: func(p *Parser, g []string, base time.Time) (token, bool) {
			return p.calendarDay(atoi(g[3]), monthOf(g[2]), atoi(g[1]), base)
		},
	},
}

var clockRules = []clockRule{
	{
		re: regexp.MustCompile(`(?i)(?:\b(?:from|between)\s+)?\b(\d{1,2})(?::(\d{2}))?\s*([ap]m)?(?:\s*[-–]\s*|\s+(?:to|and|until|till)\s+)(\d{1,2})(?::(\d{2}))?\s*([ap]m)?\b`),
		resolve: func(g []string) (token, bool) {
			if g[3] == "" && g[6] == "" && g[2] == "" && g[5] == "" {
				return token{}, false
			}
			end, ok := toClock(atoi(g[4]), atoi(g[5]), g[6])
			if !ok {
				return token{}, false
			}
			mer := g[3]
			inherited := mer == ""
			if inherited {
				mer = g[6]
			}
			start, ok := toClock(atoi(g[1]), atoi(g[2]), mer)
			if !ok {
				return token{}, false
			}
			if inherited && start.minutes() > end.minutes() && start.hour >= 12 {
				start.hour -= 12
			}
			return token{clock: start, endClock: &end}, true
		},
	},
	{
		re: regexp.MustCompile(`(?i)(?:\bat\s+|@\s*)?\b(\d{1,2})(?::(\d{2}))?\s*([ap]m)\b`),
		resolve: func(g []string) (token, bool) {
			c, ok := toClock(atoi(g[1]), atoi(g[2]), g[3])
			return token{clock: c}, ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)(?:\bat\s+|@\s*)?\b(\d{1,2}):(\d{2})\b`),
		resolve: func(g []string) (token, bool) {
			c, ok := toClock(atoi(g[1]), atoi(g[2]), "")
			return token{clock: c}, ok
		},
	},
	{
		re: regexp.MustCompile(`(?i)(?:\bat\s+)?\b(noon|midday|midnight)\b`),
		resolve: func(g []string) (token, bool) {
			if lower(g[1]) == "midnight" {
				return token{clock: clock{}}, true
			}
			return token{clock: clock{hour: 12}}, true
		},
	},
}

// calendarDay validates an explicit date. A year of zero means "next occurrence".
func (p *Parser) calendarDay(year int, month time.Month, day int, base time.Time) (token, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return token{}, false
	}
	explicitYear := year != 0
	if !explicitYear {
		year = base.Year()
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if d.Month() != month {
		return token{}, false
	}
	if !explicitYear && d.Before(p.startOfDay(base)) {
		d = d.AddDate(1, 0, 0)
	}
	return token{day: d}, true
}

func (c clock) minutes() int {
	return c.hour*60 + c.minute
}

func toClock(hour, minute int, meridiem string) (clock, bool) {
	if minute < 0 || minute > 59 {
		return clock{}, false
	}
	switch strings.ToLower(meridiem) {
	case "am":
		if hour < 1 || hour > 12 {
			return clock{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return clock{}, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return clock{}, false
		}
	}
	return clock{hour: hour, minute: minute}, true
}

func monthOf(name string) time.Month {
	return months[lower(name)[:3]]
}

func fullYear(s string) int {
	if s == "" {
		return 0
	}
	y := atoi(s)
	if y < 100 {
		y += 2000
	}
	return y
}
