package get_booking

import (
	"context"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, identity domain.Identity) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
