package store

import "errors"

var (
	// ErrDuplicateEmail is returned when creating an account with an email
	// that is already registered. Recoverable: the caller re-prompts.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("record not found")
)
