package update_booking_status

import (
	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
)

// Request asks to move one booking to a new lifecycle status
type Request struct {
	Identity  domain.Identity
	BookingID int64
	Status    string
}

// ServiceSummary is the catalog data attached to the response for display
type ServiceSummary struct {
	ID            int64
	Name          string
	Price         float64
	EstimatedTime string
	Category      string
}

// Response is the updated booking with its related summaries.
// Service/Customer/Owner are nil when the collaborator has nothing to offer.
type Response struct {
	Booking  *domain.Booking
	Service  *ServiceSummary
	Customer *userservice.User
	Owner    *userservice.User
}
