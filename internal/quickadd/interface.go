package quickadd

import (
	"context"
	"io"

	"smart-quick-add/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stateless
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	Confirm(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)
	Toggle(ctx context.Context, input ToggleInput) (model.ParsedInput, error)
	ExportICS(ctx context.Context, w io.Writer, items []model.ParsedInput) error
	Categories(ctx context.Context) ([]model.CategoryDefinition, error)

	// Compose sessions
	NewSession(ctx context.Context) (Session, error)
	SessionParse(ctx context.Context, input SessionParseInput) (ParseOutput, error)
	SessionConfirm(ctx context.Context, input SessionConfirmInput) (ConfirmOutput, error)
	SessionToggle(ctx context.Context, input SessionToggleInput) (model.ParsedInput, error)
}
