package category

import (
	"context"
	"fmt"

	"smart-quick-add/internal/model"
)

// Defaults is used when no category file is configured.
var Defaults = []model.CategoryDefinition{
	{ID: "work", Name: "Work", Keywords: []string{"work", "project", "deadline", "report", "office"}},
	{ID: "personal", Name: "Personal", Keywords: []string{"family", "friend", "home", "birthday", "holiday"}},
	{ID: "shopping", Name: "Shopping", Keywords: []string{"buy", "purchase", "store", "shop", "groceries"}},
	{ID: "education", Name: "Education", Keywords: []string{"study", "learn", "course", "homework", "exam"}},
	{ID: "travel", Name: "Travel", Keywords: []string{"trip", "flight", "hotel", "vacation", "booking"}},
}

// Catalog is an in-memory Source. It never changes after NewCatalog, so it is
// safe for concurrent use.
type Catalog struct {
	items []model.CategoryDefinition
}

// NewCatalog validates defs and wraps them in a Catalog.
func NewCatalog(defs []model.CategoryDefinition) (*Catalog, error) {
	if err := validate(defs); err != nil {
		return nil, err
	}
	return &Catalog{items: clone(defs)}, nil
}

// List returns a copy of the categories.
func (c *Catalog) List(ctx context.Context) ([]model.CategoryDefinition, error) {
	return clone(c.items), nil
}

func validate(defs []model.CategoryDefinition) error {
	seen := make(map[string]bool, len(defs))
	for i, d := range defs {
		if d.ID == "" {
			return fmt.Errorf("category #%d: %w", i, ErrMissingID)
		}
		if seen[d.ID] {
			return fmt.Errorf("category %q: %w", d.ID, ErrDuplicateID)
		}
		seen[d.ID] = true
	}
	return nil
}

func clone(defs []model.CategoryDefinition) []model.CategoryDefinition {
	out := make([]model.CategoryDefinition, len(defs))
	for i, d := range defs {
		d.Keywords = append([]string(nil), d.Keywords...)
		out[i] = d
	}
	return out
}
