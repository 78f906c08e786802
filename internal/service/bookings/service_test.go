package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	bookingRepo "github.com/bikeservicepro/BSP-BookingService/internal/infra/storage/booking"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
	"github.com/bikeservicepro/BSP-BookingService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking

	lastFilter       domain.OwnerBookingsFilter
	customerBookings []*domain.Booking
	ownerBookings    []*domain.Booking
	ownerTotal       int64
	err              error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customerBookings, nil
}

func (f *fakeRepo) GetByOwnerWithFilter(_ context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	return f.ownerBookings, nil
}

func (f *fakeRepo) CountByOwnerWithFilter(_ context.Context, filter domain.OwnerBookingsFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.ownerTotal, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking(id, customerID, ownerID int64) *domain.Booking {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:             id,
		CustomerID:     customerID,
		ServiceOwnerID: ownerID,
		ServiceID:      42,
		Bike: domain.BikeDetails{
			Brand:              "Honda",
			Model:              "CB350",
			Year:               2021,
			RegistrationNumber: "KA01AB1234",
		},
		BookingDate: date,
		TimeSlot:    "10:00 AM",
		Status:      domain.StatusPending,
		TotalAmount: 1500,
		Urgency:     domain.UrgencyNormal,
		CreatedAt:   date,
		UpdatedAt:   date,
	}
}

func TestGetByID(t *testing.T) {
	customer := domain.Identity{UserID: 7, Role: domain.RoleCustomer}
	owner := domain.Identity{UserID: 9, Role: domain.RoleServiceOwner}
	stranger := domain.Identity{UserID: 1000, Role: domain.RoleCustomer}

	repo := &fakeRepo{bookings: map[int64]*domain.Booking{
		1: sampleBooking(1, customer.UserID, owner.UserID),
	}}
	svc := bookings.NewService(repo, nopLogger{})

	t.Run("customer can read own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, customer)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-09-10", resp.BookingDate)
		assert.Equal(t, "10:00 AM", resp.TimeSlot)
	})

	t.Run("service owner can read booking against own service", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, owner)
		require.NoError(t, err)
		assert.Equal(t, owner.UserID, resp.ServiceOwnerID)
	})

	t.Run("unrelated user is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, stranger)
		assert.ErrorIs(t, err, bookings.ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 999, customer)
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})
}

func TestGetMyBookings(t *testing.T) {
	customer := domain.Identity{UserID: 7, Role: domain.RoleCustomer}
	owner := domain.Identity{UserID: 9, Role: domain.RoleServiceOwner}

	t.Run("customer gets own history", func(t *testing.T) {
		repo := &fakeRepo{customerBookings: []*domain.Booking{
			sampleBooking(1, customer.UserID, owner.UserID),
			sampleBooking(2, customer.UserID, owner.UserID),
		}}
		svc := bookings.NewService(repo, nopLogger{})

		resp, err := svc.GetMyBookings(context.Background(), customer, nil)
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 2)
	})

	t.Run("owner gets bookings against owned services", func(t *testing.T) {
		repo := &fakeRepo{ownerBookings: []*domain.Booking{
			sampleBooking(3, 7, owner.UserID),
		}}
		svc := bookings.NewService(repo, nopLogger{})

		resp, err := svc.GetMyBookings(context.Background(), owner, nil)
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, owner.UserID, repo.lastFilter.OwnerID)
	})

	t.Run("status filter is converted", func(t *testing.T) {
		repo := &fakeRepo{ownerBookings: nil}
		svc := bookings.NewService(repo, nopLogger{})

		_, err := svc.GetMyBookings(context.Background(), owner, ptr.Ptr("confirmed"))
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := bookings.NewService(repo, nopLogger{})

		_, err := svc.GetMyBookings(context.Background(), customer, ptr.Ptr("archived"))
		assert.ErrorIs(t, err, bookings.ErrInvalidInput)
	})
}

func TestGetOwnerBookings(t *testing.T) {
	owner := domain.Identity{UserID: 9, Role: domain.RoleServiceOwner}
	customer := domain.Identity{UserID: 7, Role: domain.RoleCustomer}

	t.Run("customer role is denied", func(t *testing.T) {
		svc := bookings.NewService(&fakeRepo{}, nopLogger{})
		_, err := svc.GetOwnerBookings(context.Background(), customer, &models.GetOwnerBookingsRequest{Page: 1, PerPage: 10})
		assert.ErrorIs(t, err, bookings.ErrAccessDenied)
	})

	t.Run("pagination math", func(t *testing.T) {
		repo := &fakeRepo{
			ownerBookings: []*domain.Booking{sampleBooking(1, 7, owner.UserID)},
			ownerTotal:    21,
		}
		svc := bookings.NewService(repo, nopLogger{})

		resp, err := svc.GetOwnerBookings(context.Background(), owner, &models.GetOwnerBookingsRequest{Page: 2, PerPage: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Pagination.CurrentPage)
		assert.Equal(t, 3, resp.Pagination.TotalPages)
		assert.Equal(t, int64(21), resp.Pagination.TotalBookings)
		assert.True(t, resp.Pagination.HasNext)
		assert.True(t, resp.Pagination.HasPrev)
		assert.Equal(t, uint64(10), repo.lastFilter.Limit)
		assert.Equal(t, uint64(10), repo.lastFilter.Offset)
	})

	t.Run("filters pass through", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := bookings.NewService(repo, nopLogger{})

		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		req := &models.GetOwnerBookingsRequest{
			ServiceID: ptr.Ptr(int64(42)),
			StartDate: &start,
			Status:    ptr.Ptr("pending"),
			Page:      1,
			PerPage:   20,
		}
		_, err := svc.GetOwnerBookings(context.Background(), owner, req)
		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.ServiceID)
		assert.Equal(t, int64(42), *repo.lastFilter.ServiceID)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
	})

	t.Run("invalid status in filter", func(t *testing.T) {
		svc := bookings.NewService(&fakeRepo{}, nopLogger{})
		req := &models.GetOwnerBookingsRequest{Status: ptr.Ptr("nope"), Page: 1, PerPage: 10}
		_, err := svc.GetOwnerBookings(context.Background(), owner, req)
		assert.ErrorIs(t, err, bookings.ErrInvalidInput)
	})
}
