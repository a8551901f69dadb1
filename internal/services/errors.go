package services

import "errors"

// Request-scoped domain errors. All are recoverable conditions reported back
// to the caller; handlers translate them with errors.Is. A store failure is
// the only condition that propagates as-is.
var (
	ErrUnknownUser        = errors.New("unknown user")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrEmptyText          = errors.New("message text must not be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Registration checks, reported in this order.
	ErrMissingUsername  = errors.New("you have to enter a username")
	ErrInvalidEmail     = errors.New("you have to enter a valid email address")
	ErrMissingPassword  = errors.New("you have to enter a password")
	ErrPasswordMismatch = errors.New("the two passwords do not match")
	ErrUsernameTaken    = errors.New("the username is already taken")
)
