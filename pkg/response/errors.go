package response

import "net/http"

// HTTPError carries the status a handler wants for a domain error.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose error code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "Not found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
