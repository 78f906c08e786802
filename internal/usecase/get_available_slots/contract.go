package get_available_slots

import (
	"context"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
)

// BookingRepository is the ledger surface the resolver needs
type BookingRepository interface {
	// GetOccupyingForDay returns the bookings holding slots on (serviceID, date)
	GetOccupyingForDay(ctx context.Context, serviceID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogClient is the read accessor into the Service Catalog
type CatalogClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// Logger is the logging surface the usecase needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
