package usecase

import (
	"context"
	"io"

	"smart-quick-add/internal/model"
	"smart-quick-add/pkg/icalexport"
)

// ExportICS writes items as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context, w io.Writer, items []model.ParsedInput) error {
	if err := icalexport.Encode(w, uc.now(), items...); err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS icalexport.Encode: %v", err)
		return err
	}
	return nil
}

// Categories lists the configured categories.
func (uc *implUseCase) Categories(ctx context.Context) ([]model.CategoryDefinition, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Categories categories.List: %v", err)
		return nil, err
	}
	return categories, nil
}
