package category

import (
	"context"

	"smart-quick-add/internal/model"
)

// Source supplies the categories a parse may assign.
type Source interface {
	List(ctx context.Context) ([]model.CategoryDefinition, error)
}
