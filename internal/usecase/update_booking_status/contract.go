package update_booking_status

import (
	"context"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
)

// BookingRepository is the ledger surface the transition flow needs
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateStatus writes the new status and returns the refreshed
	// updated_at timestamp
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error)
}

// CatalogClient is the read accessor into the Service Catalog
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// UserClient provides account summaries for the booking response
type UserClient interface {
	GetUserOrNil(ctx context.Context, userID int64) *userservice.User
}

// Logger is the logging surface the usecase needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
