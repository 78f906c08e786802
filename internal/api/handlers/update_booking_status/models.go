package update_booking_status

import (
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
	updateBookingStatus "github.com/bikeservicepro/BSP-BookingService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customerId"`
	ServiceOwnerID  int64           `json:"serviceOwnerId"`
	ServiceID       int64           `json:"serviceId"`
	BookingDate     string          `json:"bookingDate"`
	TimeSlot        string          `json:"timeSlot"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	Urgency         string          `json:"urgency"`
	Service         *ServiceSummary `json:"service,omitempty"`
	Customer        *UserSummary    `json:"customer,omitempty"`
	ServiceOwner    *UserSummary    `json:"serviceOwner,omitempty"`
	UpdatedAt       string          `json:"updatedAt"`
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

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *BookingResponse {
	b := resp.Booking

	var service *ServiceSummary
	if resp.Service != nil {
		service = &ServiceSummary{
			ID:            resp.Service.ID,
			Name:          resp.Service.Name,
			Price:         resp.Service.Price,
			EstimatedTime: resp.Service.EstimatedTime,
			Category:      resp.Service.Category,
		}
	}

	return &BookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ServiceOwnerID: b.ServiceOwnerID,
		ServiceID:      b.ServiceID,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		TimeSlot:       b.TimeSlot,
		Status:         string(b.Status),
		TotalAmount:    b.TotalAmount,
		Urgency:        string(b.Urgency),
		Service:        service,
		Customer:       userSummaryOrNil(resp.Customer),
		ServiceOwner:   userSummaryOrNil(resp.Owner),
		UpdatedAt:      b.UpdatedAt.Format(time.RFC3339),
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
