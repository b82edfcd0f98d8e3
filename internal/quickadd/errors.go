package quickadd

import "errors"

var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrSessionNotFound   = errors.New("session not found or expired")
	ErrStaleInput        = errors.New("input superseded by a newer one")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidSuggestion = errors.New("invalid suggestion")
)
