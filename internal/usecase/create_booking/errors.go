package create_booking

import "errors"

var (
	// ErrCustomersOnly is returned when the caller is not a customer
	ErrCustomersOnly = errors.New("create_booking: only customers can book services")

	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive is returned when the service is currently disabled
	ErrServiceInactive = errors.New("create_booking: service is not available")

	// ErrDateInPast is returned when the booking date is before today
	ErrDateInPast = errors.New("create_booking: booking date cannot be in the past")

	// ErrInvalidTimeSlot is returned when the slot label is not configured on
	// the service
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotTaken is returned when the slot is already held by an occupying
	// booking; the caller should re-query availability and pick another slot
	ErrSlotTaken = errors.New("create_booking: time slot is already booked")

	// ErrInvalidInput is returned on missing or malformed request fields
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on infrastructure failures
	ErrInternal = errors.New("create_booking: internal error")
)
