package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	bookingRepo "github.com/bikeservicepro/BSP-BookingService/internal/infra/storage/booking"
)

// UseCase governs the booking lifecycle. Transitions are permissive between
// non-terminal states; whether completed/cancelled bookings may be reopened
// is a policy switch (strict mode rejects it). Moving a booking into a
// terminal state releases its slot immediately, with no extra bookkeeping:
// occupancy is derived from status, not stored.
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	userClient    UserClient
	strict        bool
	logger        Logger
}

// NewUseCase creates the usecase. strict rejects transitions out of terminal
// states.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	userClient UserClient,
	strict bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		userClient:    userClient,
		strict:        strict,
		logger:        logger,
	}
}

// Execute moves one booking to the requested status.
// Only the owner of the booking's service may transition it.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%d, status=%s, user=%d",
		req.BookingID, req.Status, req.Identity.UserID)

	newStatus := domain.BookingStatus(req.Status)
	if !newStatus.Valid() {
		uc.logger.Warn("UpdateBookingStatus: invalid status %q for booking id=%d", req.Status, req.BookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.ServiceOwnerID != req.Identity.UserID {
		uc.logger.Warn("UpdateBookingStatus: user=%d does not own booking id=%d", req.Identity.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanTransitionTo(newStatus, uc.strict) {
		uc.logger.Warn("UpdateBookingStatus: booking id=%d is terminal (%s), refusing transition to %s",
			req.BookingID, booking.Status, newStatus)
		return nil, ErrTerminalState
	}

	updatedAt, err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			uc.logger.Warn("UpdateBookingStatus: booking id=%d cannot re-occupy slot %q", req.BookingID, booking.TimeSlot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("UpdateBookingStatus: failed to update booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	booking.Status = newStatus
	booking.UpdatedAt = updatedAt

	uc.logger.Info("UpdateBookingStatus: booking id=%d moved to %s", req.BookingID, newStatus)

	return &Response{
		Booking:  booking,
		Service:  uc.serviceSummaryOrNil(ctx, booking.ServiceID),
		Customer: uc.userClient.GetUserOrNil(ctx, booking.CustomerID),
		Owner:    uc.userClient.GetUserOrNil(ctx, booking.ServiceOwnerID),
	}, nil
}

// serviceSummaryOrNil fetches the catalog summary, degrading to nil so a
// catalog outage never fails a status update that already committed
func (uc *UseCase) serviceSummaryOrNil(ctx context.Context, serviceID int64) *ServiceSummary {
	service, err := uc.catalogClient.GetService(ctx, serviceID)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: no catalog summary for service id=%d: %v", serviceID, err)
		return nil
	}
	return &ServiceSummary{
		ID:            service.ID,
		Name:          service.Name,
		Price:         service.Price,
		EstimatedTime: service.EstimatedTime,
		Category:      service.Category,
	}
}
