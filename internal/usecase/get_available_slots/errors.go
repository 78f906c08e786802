package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
