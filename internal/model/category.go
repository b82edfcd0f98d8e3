package model

import "strings"

// CategoryDefinition is a user category the parser can assign.
type CategoryDefinition struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// MatchKeywords returns the trigger strings for the category. When none are
// configured the display name, its lowercase form and its words are used.
func (c CategoryDefinition) MatchKeywords() []string {
	if len(c.Keywords) > 0 {
		return c.Keywords
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil
	}

	lower := strings.ToLower(c.Name)
	out := []string{c.Name, lower}
	for _, w := range strings.Fields(lower) {
		out = append(out, w)
	}
	return out
}
