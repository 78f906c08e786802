package get_available_slots

import "time"

// Request asks for the free slots of a service on one calendar date.
// The date is taken as-is; range policy belongs to the caller.
type Request struct {
	ServiceID int64
	Date      time.Time
}

// Response lists the free slot labels in their configured order
type Response struct {
	ServiceID      int64
	Date           time.Time
	AvailableSlots []string
}
