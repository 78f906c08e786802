package models

import (
	"errors"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus is returned when a status string is not a known label
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// GetOwnerBookingsRequest filters the owner-facing booking listing
type GetOwnerBookingsRequest struct {
	ServiceID  *int64
	CustomerID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *string
	Page       int
	PerPage    int
}

// ToDomainFilter converts the request into the repository filter for ownerID
func (r *GetOwnerBookingsRequest) ToDomainFilter(ownerID int64) (domain.OwnerBookingsFilter, error) {
	filter := domain.OwnerBookingsFilter{
		OwnerID:    ownerID,
		ServiceID:  r.ServiceID,
		CustomerID: r.CustomerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.PerPage > 0 {
		filter.Limit = uint64(r.PerPage)
		if r.Page > 1 {
			filter.Offset = uint64(r.Page-1) * uint64(r.PerPage)
		}
	}

	return filter, nil
}

// Response models

// BikeDetailsResponse is the vehicle block of a booking response
type BikeDetailsResponse struct {
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	RegistrationNumber string `json:"registrationNumber"`
	EngineNumber       string `json:"engineNumber,omitempty"`
	ChassisNumber      string `json:"chassisNumber,omitempty"`
}

// BookingResponse is one booking as served to clients
type BookingResponse struct {
	ID             int64               `json:"id"`
	CustomerID     int64               `json:"customerId"`
	ServiceOwnerID int64               `json:"serviceOwnerId"`
	ServiceID      int64               `json:"serviceId"`
	BikeDetails    BikeDetailsResponse `json:"bikeDetails"`
	BookingDate    string              `json:"bookingDate"` // "2025-10-15"
	TimeSlot       string              `json:"timeSlot"`
	Status         string              `json:"status"`
	TotalAmount    float64             `json:"totalAmount"`
	Urgency        string              `json:"urgency"`
	CustomerAddress string             `json:"customerAddress"`
	SpecialRequests string             `json:"specialRequests,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// BookingListResponse is a flat list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Pagination describes the page window of a paged listing
type Pagination struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalBookings int64 `json:"totalBookings"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// PagedBookingsResponse is the owner-facing paged listing
type PagedBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination Pagination        `json:"pagination"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into its response DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ServiceOwnerID: b.ServiceOwnerID,
		ServiceID:      b.ServiceID,
		BikeDetails: BikeDetailsResponse{
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
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList converts a slice of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
