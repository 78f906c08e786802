package create_booking

import (
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
	createBooking "github.com/bikeservicepro/BSP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID       int64              `json:"serviceId"`
	BikeDetails     BikeDetailsRequest `json:"bikeDetails"`
	BookingDate     string             `json:"bookingDate"` // "2025-10-15"
	TimeSlot        string             `json:"timeSlot"`
	CustomerAddress string             `json:"customerAddress"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
	Urgency         string             `json:"urgency,omitempty"`
}

// BikeDetailsRequest is the vehicle block of a booking submission
type BikeDetailsRequest struct {
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registrationNumber"`
	EngineNumber       string `json:"engineNumber,omitempty"`
	ChassisNumber      string `json:"chassisNumber,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64                `json:"id"`
	CustomerID      int64                `json:"customerId"`
	ServiceOwnerID  int64                `json:"serviceOwnerId"`
	ServiceID       int64                `json:"serviceId"`
	BikeDetails     BikeDetailsRequest   `json:"bikeDetails"`
	BookingDate     string               `json:"bookingDate"`
	TimeSlot        string               `json:"timeSlot"`
	Status          string               `json:"status"`
	TotalAmount     float64              `json:"totalAmount"`
	Urgency         string               `json:"urgency"`
	CustomerAddress string               `json:"customerAddress"`
	SpecialRequests string               `json:"specialRequests,omitempty"`
	Service         ServiceSummary       `json:"service"`
	Customer        *UserSummary         `json:"customer,omitempty"`
	ServiceOwner    *UserSummary         `json:"serviceOwner,omitempty"`
	CreatedAt       string               `json:"createdAt"`
	UpdatedAt       string               `json:"updatedAt"`
}

// ServiceSummary is the catalog data echoed back for display
type ServiceSummary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"serviceName"`
	Price         float64 `json:"price"`
	EstimatedTime string  `json:"estimatedTime,omitempty"`
	Category      string  `json:"category,omitempty"`
}

// UserSummary is the user service data echoed back for display
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(identity domain.Identity) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Identity:  identity,
		ServiceID: r.ServiceID,
		Bike: createBooking.BikeDetailsInput{
			Brand:              r.BikeDetails.Brand,
			Model:              r.BikeDetails.Model,
			Year:               r.BikeDetails.Year,
			RegistrationNumber: r.BikeDetails.RegistrationNumber,
			EngineNumber:       r.BikeDetails.EngineNumber,
			ChassisNumber:      r.BikeDetails.ChassisNumber,
		},
		BookingDate:     bookingDate,
		TimeSlot:        r.TimeSlot,
		CustomerAddress: r.CustomerAddress,
		SpecialRequests: r.SpecialRequests,
		Urgency:         r.Urgency,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking

	return &BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ServiceOwnerID: b.ServiceOwnerID,
		ServiceID:      b.ServiceID,
		BikeDetails: BikeDetailsRequest{
			Brand:              b.Bike.Brand,
			Model:              b.Bike.Model,
			Year:               b.Bike.Year,
			RegistrationNumber: b.Bike.RegistrationNumber,
			EngineNumber:       b.Bike.EngineNumber,
			ChassisNumber:      b.Bike.ChassisNumber,
		},
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot,
		Status:          string(b.Status),
		TotalAmount:     b.TotalAmount,
		Urgency:         string(b.Urgency),
		CustomerAddress: b.CustomerAddress,
		SpecialRequests: b.SpecialRequests,
		Service: ServiceSummary{
			ID:            resp.Service.ID,
			Name:          resp.Service.Name,
			Price:         resp.Service.Price,
			EstimatedTime: resp.Service.EstimatedTime,
			Category:      resp.Service.Category,
		},
		Customer:     userSummaryOrNil(resp.Customer),
		ServiceOwner: userSummaryOrNil(resp.Owner),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

func userSummaryOrNil(u *userservice.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
