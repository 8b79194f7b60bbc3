package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned by CreateUser when the email is
	// already taken (unique index violation).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup, update, or delete does
	// not match any account.
	ErrNoUserWasFound = errors.New("no user was found")
)
