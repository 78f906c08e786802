package domain

import "time"

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Valid returns true if s is one of the five known statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsOccupying returns true if a booking in this status holds its time slot
func (s BookingStatus) IsOccupying() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// IsTerminal returns true for the end states of the lifecycle.
// Terminal bookings release their slot.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Urgency is an informational priority attached by the customer.
// It has no effect on scheduling.
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Valid returns true if u is a known urgency level
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyEmergency:
		return true
	}
	return false
}

// BikeDetails describes the vehicle a booking is for
type BikeDetails struct {
	Brand              string
	Model              string
	Year               int
	RegistrationNumber string // stored uppercase
	EngineNumber       string
	ChassisNumber      string
}

// Booking represents a service appointment in the ledger.
// A booking is never deleted; cancellation is a status change.
type Booking struct {
	ID             int64
	CustomerID     int64
	ServiceOwnerID int64 // denormalized from the service at creation, immutable
	ServiceID      int64

	Bike BikeDetails

	BookingDate time.Time // calendar date, time of day irrelevant
	TimeSlot    string    // opaque label, must match a configured slot exactly
	Status      BookingStatus

	// Captured copy of the service price; history survives later price edits
	TotalAmount float64

	Urgency         Urgency
	CustomerAddress string
	SpecialRequests string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the booking currently holds its slot
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// IsTerminal returns true if the booking reached an end state
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// CanTransitionTo reports whether the booking may move to next.
// Any valid target is accepted from a non-terminal state. Transitions out of
// terminal states are only allowed in permissive mode (strict=false), which
// reproduces the historical behavior of the platform.
func (b *Booking) CanTransitionTo(next BookingStatus, strict bool) bool {
	if !next.Valid() {
		return false
	}
	if strict && b.IsTerminal() {
		return false
	}
	return true
}

// OwnerBookingsFilter narrows the owner-facing booking listing
type OwnerBookingsFilter struct {
	OwnerID    int64 // required
	ServiceID  *int64
	CustomerID *int64
	StartDate  *time.Time // inclusive, by booking date
	EndDate    *time.Time // inclusive, by booking date
	Status     *BookingStatus
	Limit      uint64 // 0 = no limit
	Offset     uint64
}
