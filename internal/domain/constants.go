package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinBikeYear           = 1950
	MaxBikeYearHeadroom   = 1 // next-year models are accepted
	MaxSpecialRequestsLen = 500
	MaxAddressLen         = 500
)

// OccupyingStatuses are the statuses that reserve a time slot.
// Used when deriving availability and when checking slot conflicts.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses are the end states; bookings in them release their slot
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
