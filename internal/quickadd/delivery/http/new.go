package http

import (
	"smart-quick-add/internal/quickadd"
	"smart-quick-add/pkg/log"
)

type handler struct {
	l  log.Logger
	uc quickadd.UseCase
}

// New creates a new HTTP handler for the quick-add domain.
func New(l log.Logger, uc quickadd.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
