package model

// Confidence is the tier attached to every detection.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// rank orders tiers so the best one can be kept when several match.
func (c Confidence) rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	}
	return 0
}

// Better reports whether c is a stronger tier than other.
func (c Confidence) Better(other Confidence) bool {
	return c.rank() > other.rank()
}

// IsHigh reports whether detections at this tier are applied without confirmation.
func (c Confidence) IsHigh() bool {
	return c == ConfidenceHigh
}

// Detection is one signal extracted from text for a single axis.
// A Detection only exists when at least one pattern matched.
type Detection[T any] struct {
	Value      T          `json:"value"`
	Confidence Confidence `json:"confidence"`
	Evidence   []string   `json:"evidence"`
}
