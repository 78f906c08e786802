package get_my_bookings

import (
	"context"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetMyBookings(ctx context.Context, identity domain.Identity, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
