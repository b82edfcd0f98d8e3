package detector

import "smart-quick-add/internal/model"

// DetectVisibility reports whether text marks the item public (true) or private (false).
// Public keywords are scanned first.
func DetectVisibility(text string) (model.Detection[bool], bool) {
	return FirstMatch(text, visibilityRules)
}
