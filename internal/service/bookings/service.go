package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	bookingRepo "github.com/bikeservicepro/BSP-BookingService/internal/infra/storage/booking"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

// Service is the read side of the booking ledger: single bookings, customer
// history and the owner-facing listing. All reads are lock-free; staleness
// is acceptable because writes re-validate.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the bookings read service
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID fetches one booking. Visible only to the booking's customer and to
// the owner of its service.
func (s *Service) GetByID(ctx context.Context, id int64, identity domain.Identity) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, identity.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != identity.UserID && booking.ServiceOwnerID != identity.UserID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", identity.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetMyBookings fetches the caller's booking history, newest first: own
// bookings for a customer, bookings against owned services for an owner.
// Optionally filters by status.
func (s *Service) GetMyBookings(ctx context.Context, identity domain.Identity, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetMyBookings: user=%d, role=%s", identity.UserID, identity.Role)

	var domainStatus *domain.BookingStatus
	if status != nil {
		converted, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetMyBookings: invalid status=%q for user=%d", *status, identity.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	var (
		result []*domain.Booking
		err    error
	)
	if identity.IsServiceOwner() {
		filter := domain.OwnerBookingsFilter{OwnerID: identity.UserID, Status: domainStatus}
		result, err = s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	} else {
		result, err = s.bookingRepo.GetByCustomerID(ctx, identity.UserID, domainStatus)
	}
	if err != nil {
		s.logger.Error("GetMyBookings: repository error for user=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: GetMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyBookings: fetched %d bookings for user=%d", len(result), identity.UserID)
	return models.FromDomainBookingList(result), nil
}

// GetOwnerBookings fetches a service owner's bookings with filters and
// pagination. Owner-only.
func (s *Service) GetOwnerBookings(ctx context.Context, identity domain.Identity, req *models.GetOwnerBookingsRequest) (*models.PagedBookingsResponse, error) {
	s.logger.Info("GetOwnerBookings: owner=%d, page=%d", identity.UserID, req.Page)

	if !identity.IsServiceOwner() {
		s.logger.Warn("GetOwnerBookings: user=%d with role=%s is not a service owner", identity.UserID, identity.Role)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter(identity.UserID)
	if err != nil {
		s.logger.Warn("GetOwnerBookings: invalid filter for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	result, err := s.bookingRepo.GetByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	total, err := s.bookingRepo.CountByOwnerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerBookings: count error for owner=%d: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - count error: %v", ErrInternal, err)
	}

	list := models.FromDomainBookingList(result)

	page := req.Page
	if page < 1 {
		page = 1
	}
	totalPages := 1
	if req.PerPage > 0 {
		totalPages = int((total + int64(req.PerPage) - 1) / int64(req.PerPage))
		if totalPages < 1 {
			totalPages = 1
		}
	}

	s.logger.Info("GetOwnerBookings: fetched %d of %d bookings for owner=%d", len(list.Bookings), total, identity.UserID)

	return &models.PagedBookingsResponse{
		Bookings: list.Bookings,
		Pagination: models.Pagination{
			CurrentPage:   page,
			TotalPages:    totalPages,
			TotalBookings: total,
			HasNext:       page < totalPages,
			HasPrev:       page > 1,
		},
	}, nil
}
