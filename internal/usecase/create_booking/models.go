package create_booking

import (
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
)

// Request carries a booking submission. Identity comes from the verified
// token, everything else from the client.
type Request struct {
	Identity domain.Identity

	ServiceID       int64
	Bike            BikeDetailsInput
	BookingDate     time.Time // calendar date
	TimeSlot        string
	CustomerAddress string
	SpecialRequests string // optional
	Urgency         string // optional, defaults to "normal"
}

// BikeDetailsInput is the vehicle block of a booking submission
type BikeDetailsInput struct {
	Brand              string
	Model              string
	Year               int
	RegistrationNumber string
	EngineNumber       string // optional
	ChassisNumber      string // optional
}

// ServiceSummary is the catalog data attached to the response for display
type ServiceSummary struct {
	ID            int64
	Name          string
	Price         float64
	EstimatedTime string
	Category      string
}

// Response is the created booking with its related summaries.
// Customer/Owner are nil when the user service has no summary to offer.
type Response struct {
	Booking  *domain.Booking
	Service  ServiceSummary
	Customer *userservice.User
	Owner    *userservice.User
}
