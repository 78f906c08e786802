package catalogservice

// TimeSlot is one configured appointment opportunity on a service.
// IsBooked is display-only data maintained by the catalog; slot occupancy is
// always derived from the booking ledger, never from this flag.
type TimeSlot struct {
	Time     string `json:"time"`
	IsBooked bool   `json:"isBooked"`
}

// Service is the catalog's read model of a bookable service
type Service struct {
	ID            int64      `json:"id"`
	Name          string     `json:"serviceName"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	EstimatedTime string     `json:"estimatedTime"`
	Category      string     `json:"category"`
	OwnerID       int64      `json:"serviceOwnerId"`
	Active        bool       `json:"isActive"`
	TimeSlots     []TimeSlot `json:"availableTimeSlots"`
}

// SlotLabels returns the configured slot labels in catalog order
func (s *Service) SlotLabels() []string {
	labels := make([]string, len(s.TimeSlots))
	for i, slot := range s.TimeSlots {
		labels[i] = slot.Time
	}
	return labels
}

// HasSlot reports whether label is one of the configured slots.
// Labels are opaque strings compared by exact equality.
func (s *Service) HasSlot(label string) bool {
	for _, slot := range s.TimeSlots {
		if slot.Time == label {
			return true
		}
	}
	return false
}
