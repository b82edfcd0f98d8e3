package datemath

import "time"

// Match is one date/time span found in free text.
type Match struct {
	Text     string     // literal substring as it appears in the input
	Index    int        // byte offset of Text in the input
	Start    time.Time  // resolved instant (or range start)
	End      *time.Time // range end, nil for single instants
	HasClock bool       // an explicit clock time was part of the span
	IsAllDay bool       // only a day was given; Start sits at the default hour
}

type tokenKind int

const (
	kindDay tokenKind = iota
	kindClock
	kindPart
)

type clock struct {
	hour   int
	minute int
}

// token is a single recognised fragment before adjacent fragments are merged.
type token struct {
	kind     tokenKind
	start    int
	end      int
	day      time.Time  // kindDay: midnight of the resolved day
	instant  *time.Time // kindDay: set when the phrase keeps the time of day ("in 2 hours")
	clock    clock      // kindClock
	endClock *clock     // kindClock ranges
}
