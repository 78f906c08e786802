package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
)

// UseCase resolves which configured slots of a service are still free on a
// given date. It is a pure read: availability is derived from the booking
// ledger on every call, and a slightly stale answer is acceptable because
// the booking admission flow re-checks at write time.
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	logger        Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute returns the service's configured slots minus the slots held by
// occupying bookings on the requested date, preserving the configured order
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	occupying, err := uc.bookingRepo.GetOccupyingForDay(ctx, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available := subtractBookedSlots(service.SlotLabels(), occupying)

	uc.logger.Info("GetAvailableSlots: service=%d, date=%s, %d of %d slots free",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(available), len(service.TimeSlots))

	return &Response{
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		AvailableSlots: available,
	}, nil
}

// subtractBookedSlots removes the slot labels held by occupying bookings.
// Labels are opaque strings compared by exact equality; the catalog's
// configured order is preserved in the result.
func subtractBookedSlots(configured []string, occupying []*domain.Booking) []string {
	booked := make(map[string]struct{}, len(occupying))
	for _, b := range occupying {
		// terminal bookings do not hold a slot
		if !b.IsOccupying() {
			continue
		}
		booked[b.TimeSlot] = struct{}{}
	}

	available := make([]string, 0, len(configured))
	for _, label := range configured {
		if _, taken := booked[label]; !taken {
			available = append(available, label)
		}
	}

	return available
}

func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
