package create_booking

import (
	"context"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
)

// BookingRepository is the ledger surface the admission flow needs
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupyingForDay(ctx context.Context, serviceID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogClient is the read accessor into the Service Catalog
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// UserClient provides account summaries for the booking response
type UserClient interface {
	GetUserOrNil(ctx context.Context, userID int64) *userservice.User
}

// TransactionManager runs the check-and-reserve step atomically
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the usecase needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
