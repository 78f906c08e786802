package get_owner_bookings

import (
	"context"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetOwnerBookings(ctx context.Context, identity domain.Identity, req *models.GetOwnerBookingsRequest) (*models.PagedBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
