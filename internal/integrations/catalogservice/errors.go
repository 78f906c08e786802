package catalogservice

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("catalogservice: service not found")

	// ErrInvalidResponse is returned when the catalog answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("catalogservice: invalid response")

	// ErrInternal is returned for transport-level failures
	ErrInternal = errors.New("catalogservice: internal error")
)
