package repository

import "errors"

var (
	// ErrNotFound covers both "no such document" and "owned by someone
	// else"; the two are indistinguishable on purpose.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate key")
)
