package datetime

import (
	"time"

	"smart-quick-add/pkg/datemath"
)

// DateParser finds date/time spans in free text. Ambiguous phrases must
// resolve forward from now. Both datemath.Parser and datemath.WhenParser
// satisfy it.
type DateParser interface {
	Find(text string, now time.Time) []datemath.Match
}
