package userservice

import "errors"

var (
	// ErrUserNotFound is returned when the user service has no such account
	ErrUserNotFound = errors.New("userservice: user not found")

	// ErrInvalidResponse is returned when the user service answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("userservice: invalid response")

	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("userservice: internal error")
)
