package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	bookingRepo "github.com/bikeservicepro/BSP-BookingService/internal/infra/storage/booking"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
)

// UseCase is the single authoritative gate for creating bookings. It never
// trusts a client-supplied availability list: the slot-occupancy check runs
// again at write time inside a serializable transaction, with the day's
// occupying bookings locked, so concurrent submissions for the same
// (service, date, slot) key commit at most once.
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	userClient    UserClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates the usecase
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	userClient UserClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		userClient:    userClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute validates and commits one booking submission.
// Preconditions are checked in a fixed order, each with its own failure:
// caller role, required fields, service existence, service active, date not
// past, slot configured, slot free. A request that fails any of them leaves
// no trace in the ledger.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s, slot=%q",
		req.Identity.UserID, req.ServiceID, req.BookingDate.Format(domain.DateFormat), req.TimeSlot)

	if !req.Identity.IsCustomer() {
		uc.logger.Warn("CreateBooking: user=%d with role=%s cannot book", req.Identity.UserID, req.Identity.Role)
		return nil, ErrCustomersOnly
	}

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	if isDateInPast(req.BookingDate, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.BookingDate.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// Slot labels are opaque; membership is exact string equality against the
	// service's configured list as it stands right now.
	if !service.HasSlot(req.TimeSlot) {
		uc.logger.Warn("CreateBooking: slot %q is not configured on service id=%d", req.TimeSlot, req.ServiceID)
		return nil, ErrInvalidTimeSlot
	}

	var result *domain.Booking

	// Check-and-reserve. The read locks the day's occupying bookings, the
	// insert joins the same transaction, and the transaction manager retries
	// serialization aborts. The partial unique index on the ledger catches
	// anything that still slips through.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		occupying, err := uc.bookingRepo.GetOccupyingForDay(txCtx, req.ServiceID, req.BookingDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if slotHeld(req.TimeSlot, occupying) {
			uc.logger.Warn("CreateBooking: slot %q on service id=%d date=%s already booked",
				req.TimeSlot, req.ServiceID, req.BookingDate.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		created, err := uc.bookingRepo.Create(txCtx, uc.buildBooking(req, service))
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for user=%d", result.ID, req.Identity.UserID)

	return &Response{
		Booking: result,
		Service: ServiceSummary{
			ID:            service.ID,
			Name:          service.Name,
			Price:         service.Price,
			EstimatedTime: service.EstimatedTime,
			Category:      service.Category,
		},
		Customer: uc.userClient.GetUserOrNil(ctx, result.CustomerID),
		Owner:    uc.userClient.GetUserOrNil(ctx, result.ServiceOwnerID),
	}, nil
}

// buildBooking assembles the ledger row: status starts at pending, the price
// and owner are captured from the service so history survives catalog edits,
// the registration number is normalized to uppercase and the optional fields
// get their defaults.
func (uc *UseCase) buildBooking(req *Request, service *catalogservice.Service) *domain.Booking {
	urgency := domain.Urgency(req.Urgency)
	if req.Urgency == "" {
		urgency = domain.UrgencyNormal
	}

	return &domain.Booking{
		CustomerID:     req.Identity.UserID,
		ServiceOwnerID: service.OwnerID,
		ServiceID:      service.ID,
		Bike: domain.BikeDetails{
			Brand:              req.Bike.Brand,
			Model:              req.Bike.Model,
			Year:               req.Bike.Year,
			RegistrationNumber: strings.ToUpper(req.Bike.RegistrationNumber),
			EngineNumber:       req.Bike.EngineNumber,
			ChassisNumber:      req.Bike.ChassisNumber,
		},
		BookingDate:     req.BookingDate,
		TimeSlot:        req.TimeSlot,
		Status:          domain.StatusPending,
		TotalAmount:     service.Price,
		Urgency:         urgency,
		CustomerAddress: req.CustomerAddress,
		SpecialRequests: req.SpecialRequests,
	}
}
