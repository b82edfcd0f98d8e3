package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`in (\d+|an?) (minute|minutes|min|mins|hour|hours|hr|hrs|day|days|week|weeks|month|months)`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parse converts a single relative day phrase to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "tmr", "tmrw":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if _, ok := weekdays[lastWord(relative)]; ok {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognised relative date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 hours", "in a week".
// Minute and hour offsets keep the time of day; the rest snap to midnight.
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount := 1
	if matches[1] != "a" && matches[1] != "an" {
		amount, _ = strconv.Atoi(matches[1])
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "min"):
		return baseTime.In(p.location).Add(time.Duration(amount) * time.Minute), nil
	case strings.HasPrefix(unit, "h"):
		return baseTime.In(p.location).Add(time.Duration(amount) * time.Hour), nil
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles "friday", "on friday", "this friday" and "next friday".
// The result is always strictly after the base day.
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := lastWord(relative)
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// at places the clock on the day of d.
func (p *Parser) at(d time.Time, c clock) time.Time {
	d = d.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), c.hour, c.minute, 0, 0, p.location)
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
