package repos

import "errors"

var (
	// ErrDuplicateEmail is the single source of truth for conflict
	// detection: stores return it from the insert itself, handlers never
	// pre-check existence.
	ErrDuplicateEmail = errors.New("email already registered")

	ErrNotFound = errors.New("user not found")
)
