package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist. For
	// tasks this also covers rows owned by a different user, so callers
	// cannot tell absence from foreign ownership.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an insert violates the unique
	// email constraint on users.
	ErrDuplicateEmail = errors.New("email already registered")
)
