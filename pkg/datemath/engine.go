package datemath

import (
	"fmt"
	"time"
)

// Engine names accepted by NewEngine.
const (
	EngineRules = "rules"
	EngineWhen  = "when"
)

// Finder is what both engines provide.
type Finder interface {
	Find(text string, baseTime time.Time) []Match
}

// NewEngine builds the named finder. An empty name selects EngineRules.
func NewEngine(name, timezone string, opts ...Option) (Finder, error) {
	var (
		f   Finder
		err error
	)
	switch name {
	case "", EngineRules:
		f, err = NewParser(timezone, opts...)
	case EngineWhen:
		f, err = NewWhenParser(timezone, opts...)
	default:
		return nil, fmt.Errorf("unknown date engine %q", name)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
