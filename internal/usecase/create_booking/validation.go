package create_booking

import (
	"fmt"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
)

// validateRequest checks that every required field is present and plausible.
// Each failure names the offending field so the caller can render it.
func validateRequest(req *Request, now time.Time) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.Bike.Brand == "" {
		return fmt.Errorf("%w: bikeDetails.brand is required", ErrInvalidInput)
	}
	if req.Bike.Model == "" {
		return fmt.Errorf("%w: bikeDetails.model is required", ErrInvalidInput)
	}
	if req.Bike.Year == 0 {
		return fmt.Errorf("%w: bikeDetails.year is required", ErrInvalidInput)
	}
	if req.Bike.Year < domain.MinBikeYear || req.Bike.Year > now.Year()+domain.MaxBikeYearHeadroom {
		return fmt.Errorf("%w: bikeDetails.year is out of range", ErrInvalidInput)
	}
	if req.Bike.RegistrationNumber == "" {
		return fmt.Errorf("%w: bikeDetails.registrationNumber is required", ErrInvalidInput)
	}
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}
	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}
	if req.CustomerAddress == "" {
		return fmt.Errorf("%w: customerAddress is required", ErrInvalidInput)
	}
	if len(req.CustomerAddress) > domain.MaxAddressLen {
		return fmt.Errorf("%w: customerAddress is too long", ErrInvalidInput)
	}
	if len(req.SpecialRequests) > domain.MaxSpecialRequestsLen {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}
	if req.Urgency != "" && !domain.Urgency(req.Urgency).Valid() {
		return fmt.Errorf("%w: urgency must be normal, urgent or emergency", ErrInvalidInput)
	}
	return nil
}

// isDateInPast reports whether date falls before today's calendar day.
// Time of day is stripped on both sides; booking for later today is allowed.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// slotHeld reports whether label is held by any occupying booking in bookings
func slotHeld(label string, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsOccupying() && b.TimeSlot == label {
			return true
		}
	}
	return false
}
