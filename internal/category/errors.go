package category

import "errors"

var (
	ErrMissingID   = errors.New("category id is required")
	ErrDuplicateID = errors.New("category id already exists")
)
