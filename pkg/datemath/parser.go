package datemath

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const DefaultHour = 12

// Parser finds date/time spans in free text and resolves them against a base time.
// Ambiguous phrases resolve forward: a weekday or clock time already passed today
// lands on its next occurrence.
type Parser struct {
	location    *time.Location
	defaultHour int
}

// Option customises a Parser.
type Option func(*Parser)

// WithDefaultHour sets the hour used for spans that name a day but no time.
func WithDefaultHour(hour int) Option {
	return func(p *Parser) {
		if hour >= 0 && hour < 24 {
			p.defaultHour = hour
		}
	}
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	p := &Parser{location: loc, defaultHour: DefaultHour}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Find returns every date/time span in text, in order of appearance.
// Adjacent day, part-of-day and clock fragments ("tomorrow at 7pm",
// "friday afternoon") are merged into one span.
func (p *Parser) Find(text string, baseTime time.Time) []Match {
	base := baseTime.In(p.location)

	tokens := p.tokenize(text, base)
	if len(tokens) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(tokens))
	for _, g := range groupTokens(text, tokens) {
		matches = append(matches, p.resolveGroup(text, g, base))
	}
	return matches
}

func (p *Parser) tokenize(text string, base time.Time) []token {
	var tokens []token

	for _, rule := range dayRules {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			groups := submatches(text, loc)
			tok, ok := rule.resolve(p, groups, base)
			if !ok {
				continue
			}
			tok.kind = kindDay
			tok.start, tok.end = loc[0], loc[1]
			tokens = append(tokens, tok)
		}
	}

	for _, loc := range partOfDayRe.FindAllStringIndex(text, -1) {
		tokens = append(tokens, token{kind: kindPart, start: loc[0], end: loc[1]})
	}

	for _, rule := range clockRules {
		for _, loc := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			groups := submatches(text, loc)
			tok, ok := rule.resolve(groups)
			if !ok {
				continue
			}
			tok.kind = kindClock
			tok.start, tok.end = loc[0], loc[1]
			tokens = append(tokens, tok)
		}
	}

	return dropOverlaps(tokens)
}

// dropOverlaps keeps the earliest, then longest, fragment wherever two overlap.
func dropOverlaps(tokens []token) []token {
	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].start != tokens[j].start {
			return tokens[i].start < tokens[j].start
		}
		return tokens[i].end-tokens[i].start > tokens[j].end-tokens[j].start
	})

	kept := tokens[:0]
	lastEnd := -1
	for _, t := range tokens {
		if t.start < lastEnd {
			continue
		}
		kept = append(kept, t)
		lastEnd = t.end
	}
	return kept
}

var joinerRe = regexp.MustCompile(`(?i)^[\s,]*(?:at|on|@|in the|by)?[\s,]*$`)

type tokenGroup struct {
	start, end int
	day        *token
	part       *token
	clock      *token
}

func (g *tokenGroup) add(t *token) bool {
	switch t.kind {
	case kindDay:
		if g.day != nil {
			return false
		}
		g.day = t
	case kindPart:
		if g.part != nil {
			return false
		}
		g.part = t
	case kindClock:
		if g.clock != nil {
			return false
		}
		g.clock = t
	}
	g.end = t.end
	return true
}

func groupTokens(text string, tokens []token) []tokenGroup {
	var groups []tokenGroup
	for i := range tokens {
		t := &tokens[i]
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if joinerRe.MatchString(text[last.end:t.start]) && last.add(t) {
				continue
			}
		}
		g := tokenGroup{start: t.start}
		g.add(t)
		groups = append(groups, g)
	}
	return groups
}

func (p *Parser) resolveGroup(text string, g tokenGroup, base time.Time) Match {
	m := Match{Text: text[g.start:g.end], Index: g.start}

	day := p.startOfDay(base)
	if g.day != nil {
		day = g.day.day
		if g.day.instant != nil && g.clock == nil {
			m.Start = *g.day.instant
			m.HasClock = true
			return m
		}
	}

	switch {
	case g.clock != nil:
		m.Start = p.at(day, g.clock.clock)
		m.HasClock = true
		if g.day == nil && m.Start.Before(base) {
			m.Start = m.Start.AddDate(0, 0, 1)
		}
		if g.clock.endClock != nil {
			end := p.at(m.Start, *g.clock.endClock)
			if !end.After(m.Start) {
				end = end.AddDate(0, 0, 1)
			}
			m.End = &end
		}
	case g.part != nil:
		m.Start = p.at(day, clock{hour: p.defaultHour})
	default:
		m.Start = p.at(day, clock{hour: p.defaultHour})
		m.IsAllDay = true
	}
	return m
}

func submatches(text string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
