package create_booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/catalogservice"
	"github.com/bikeservicepro/BSP-BookingService/internal/integrations/userservice"
	createBooking "github.com/bikeservicepro/BSP-BookingService/internal/usecase/create_booking"
)

// memoryRepo is an in-memory booking ledger. It is safe for concurrent use
// only through serializedTxManager, mirroring how the real repository relies
// on the transaction manager for isolation.
type memoryRepo struct {
	nextID   int64
	bookings []*domain.Booking
}

func (m *memoryRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.nextID++
	stored := *booking
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.bookings = append(m.bookings, &stored)
	return &stored, nil
}

func (m *memoryRepo) GetOccupyingForDay(_ context.Context, serviceID int64, date time.Time) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.ServiceID == serviceID && b.BookingDate.Equal(date) && b.Status.IsOccupying() {
			result = append(result, b)
		}
	}
	return result, nil
}

// serializedTxManager runs transactions one at a time, giving the fake repo
// the same full-isolation guarantee a serializable transaction gives the
// real one.
type serializedTxManager struct {
	mu sync.Mutex
}

func (m *serializedTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, serviceID int64) (*catalogservice.Service, error) {
	return f.service, f.err
}

type fakeUserClient struct {
	users map[int64]*userservice.User
}

func (f *fakeUserClient) GetUserOrNil(_ context.Context, userID int64) *userservice.User {
	return f.users[userID]
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleService(labels ...string) *catalogservice.Service {
	slots := make([]catalogservice.TimeSlot, len(labels))
	for i, l := range labels {
		slots[i] = catalogservice.TimeSlot{Time: l}
	}
	return &catalogservice.Service{
		ID:            42,
		Name:          "Full Service",
		Price:         1500,
		EstimatedTime: "2 hours",
		Category:      "maintenance",
		OwnerID:       9,
		Active:        true,
		TimeSlots:     slots,
	}
}

func validRequest() *createBooking.Request {
	return &createBooking.Request{
		Identity:  domain.Identity{UserID: 7, Role: domain.RoleCustomer},
		ServiceID: 42,
		Bike: createBooking.BikeDetailsInput{
			Brand:              "Honda",
			Model:              "CB350",
			Year:               2021,
			RegistrationNumber: "ka01ab1234",
		},
		BookingDate:     time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
		TimeSlot:        "10:00 AM",
		CustomerAddress: "12 Church Street",
	}
}

func newUseCase(repo *memoryRepo, catalog *fakeCatalogClient) *createBooking.UseCase {
	return createBooking.NewUseCase(
		repo,
		catalog,
		&fakeUserClient{users: map[int64]*userservice.User{
			7: {ID: 7, Name: "Asha", Role: domain.RoleCustomer},
			9: {ID: 9, Name: "Ravi", Role: domain.RoleServiceOwner},
		}},
		&serializedTxManager{},
		nopLogger{},
	)
}

func TestExecuteSuccess(t *testing.T) {
	repo := &memoryRepo{}
	uc := newUseCase(repo, &fakeCatalogClient{service: sampleService("10:00 AM", "11:00 AM")})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	b := resp.Booking
	assert.NotZero(t, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, domain.UrgencyNormal, b.Urgency)
	assert.Equal(t, int64(7), b.CustomerID)
	assert.Equal(t, int64(9), b.ServiceOwnerID, "owner is captured from the catalog")
	assert.Equal(t, 1500.0, b.TotalAmount, "price is captured at booking time")
	assert.Equal(t, "KA01AB1234", b.Bike.RegistrationNumber, "registration is normalized to uppercase")

	assert.Equal(t, "Full Service", resp.Service.Name)
	require.NotNil(t, resp.Customer)
	assert.Equal(t, "Asha", resp.Customer.Name)
	require.NotNil(t, resp.Owner)
	assert.Equal(t, "Ravi", resp.Owner.Name)
}

func TestExecutePreconditions(t *testing.T) {
	catalog := &fakeCatalogClient{service: sampleService("10:00 AM")}

	t.Run("service owners cannot book", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.Identity = domain.Identity{UserID: 9, Role: domain.RoleServiceOwner}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrCustomersOnly)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mutations := map[string]func(*createBooking.Request){
			"brand":        func(r *createBooking.Request) { r.Bike.Brand = "" },
			"model":        func(r *createBooking.Request) { r.Bike.Model = "" },
			"year":         func(r *createBooking.Request) { r.Bike.Year = 0 },
			"registration": func(r *createBooking.Request) { r.Bike.RegistrationNumber = "" },
			"timeSlot":     func(r *createBooking.Request) { r.TimeSlot = "" },
			"address":      func(r *createBooking.Request) { r.CustomerAddress = "" },
		}
		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				uc := newUseCase(&memoryRepo{}, catalog)
				req := validRequest()
				mutate(req)

				_, err := uc.Execute(context.Background(), req)
				assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
			})
		}
	})

	t.Run("implausible bike year", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.Bike.Year = 1800

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
	})

	t.Run("invalid urgency", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.Urgency = "asap"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
	})

	t.Run("unknown service", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, &fakeCatalogClient{err: catalogservice.ErrServiceNotFound})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, createBooking.ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		inactive := sampleService("10:00 AM")
		inactive.Active = false
		uc := newUseCase(&memoryRepo{}, &fakeCatalogClient{service: inactive})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, createBooking.ErrServiceInactive)
	})

	t.Run("date in the past", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.BookingDate = time.Now().AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrDateInPast)
	})

	t.Run("slot not configured on service", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.TimeSlot = "03:00 PM"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidTimeSlot)
	})

	t.Run("slot labels are matched exactly", func(t *testing.T) {
		uc := newUseCase(&memoryRepo{}, catalog)
		req := validRequest()
		req.TimeSlot = "10:00 am"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidTimeSlot)
	})
}

func TestExecuteSlotTaken(t *testing.T) {
	repo := &memoryRepo{}
	uc := newUseCase(repo, &fakeCatalogClient{service: sampleService("10:00 AM", "11:00 AM")})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	t.Run("same slot rejected", func(t *testing.T) {
		req := validRequest()
		req.Identity.UserID = 8

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrSlotTaken)
		assert.Len(t, repo.bookings, 1, "failed submission leaves no trace")
	})

	t.Run("other slot still free", func(t *testing.T) {
		req := validRequest()
		req.Identity.UserID = 8
		req.TimeSlot = "11:00 AM"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("same slot on another day still free", func(t *testing.T) {
		req := validRequest()
		req.Identity.UserID = 8
		req.BookingDate = req.BookingDate.AddDate(0, 0, 1)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecuteConcurrentSubmissions(t *testing.T) {
	const submitters = 32

	repo := &memoryRepo{}
	uc := newUseCase(repo, &fakeCatalogClient{service: sampleService("10:00 AM")})

	var wg sync.WaitGroup
	errs := make([]error, submitters)

	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.Identity.UserID = int64(100 + i)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, createBooking.ErrSlotTaken)
			lost++
		}
	}

	assert.Equal(t, 1, won, "exactly one submission wins the slot")
	assert.Equal(t, submitters-1, lost)
	assert.Len(t, repo.bookings, 1)
}

func TestExecuteDefaults(t *testing.T) {
	repo := &memoryRepo{}
	uc := newUseCase(repo, &fakeCatalogClient{service: sampleService("10:00 AM")})

	req := validRequest()
	req.Urgency = "emergency"
	req.SpecialRequests = "chain keeps slipping"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.UrgencyEmergency, resp.Booking.Urgency)
	assert.Equal(t, "chain keeps slipping", resp.Booking.SpecialRequests)
}
