package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAccessDenied is returned when the caller is neither the booking's
	// customer nor its service owner
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidInput is returned on malformed filters
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("bookings: internal error")
)
