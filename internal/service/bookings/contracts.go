package bookings

import (
	"context"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
)

// BookingRepository is the ledger surface the read-side service needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error)
	CountByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) (int64, error)
}

// Logger is the logging surface the service needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
