package http

import (
	"errors"
	"net/http"

	"smart-quick-add/internal/quickadd"
	"smart-quick-add/pkg/response"
)

var (
	errInvalidTime = response.NewHTTPError(http.StatusBadRequest, "now must be an RFC 3339 timestamp")
	errInvalidItem = response.NewHTTPError(http.StatusBadRequest, "item type or priority is invalid")
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quickadd.ErrEmptyInput):
		return response.NewHTTPError(http.StatusBadRequest, "text is required")
	case errors.Is(err, quickadd.ErrUnknownField):
		return response.NewHTTPError(http.StatusBadRequest, "unknown field")
	case errors.Is(err, quickadd.ErrInvalidSuggestion):
		return response.NewHTTPError(http.StatusBadRequest, "invalid suggestion")
	case errors.Is(err, quickadd.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, "session not found or expired")
	case errors.Is(err, quickadd.ErrStaleInput):
		return response.NewHTTPError(http.StatusConflict, "input superseded by a newer one")
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
