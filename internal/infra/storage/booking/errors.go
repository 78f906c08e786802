package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when an insert collides with the occupying-slot
	// unique index, i.e. the slot race was lost
	ErrSlotTaken = errors.New("booking.repository: slot already booked")

	// ErrBuildQuery is returned on SQL construction failures
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned on SQL execution failures
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned on result scanning failures
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
