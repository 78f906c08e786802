package update_booking_status

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrAccessDenied is returned when the caller does not own the booking's
	// service
	ErrAccessDenied = errors.New("update_booking_status: access denied")

	// ErrInvalidStatus is returned when the target status is not one of the
	// five known labels
	ErrInvalidStatus = errors.New("update_booking_status: invalid status")

	// ErrTerminalState is returned in strict mode when the booking is already
	// completed or cancelled
	ErrTerminalState = errors.New("update_booking_status: booking is in a terminal state")

	// ErrSlotTaken is returned when re-activating the booking would double-book
	// its slot
	ErrSlotTaken = errors.New("update_booking_status: time slot is already booked")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("update_booking_status: internal error")
)
