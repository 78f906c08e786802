package get_booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	getBookingHandler "github.com/bikeservicepro/BSP-BookingService/internal/api/handlers/get_booking"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

type fakeService struct {
	resp *models.BookingResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, id int64, identity domain.Identity) (*models.BookingResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(svc *fakeService, bookingID string, withIdentity bool) *httptest.ResponseRecorder {
	h := getBookingHandler.NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}", h.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	if withIdentity {
		identity := domain.Identity{UserID: 7, Role: domain.RoleCustomer}
		req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	}
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeService{resp: &models.BookingResponse{
			ID:          1,
			CustomerID:  7,
			BookingDate: "2026-09-10",
			TimeSlot:    "10:00 AM",
			Status:      "pending",
		}}

		rec := doRequest(svc, "1", true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"timeSlot":"10:00 AM"`)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doRequest(&fakeService{}, "abc", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		rec := doRequest(&fakeService{}, "1", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := doRequest(&fakeService{err: bookings.ErrBookingNotFound}, "1", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("access denied", func(t *testing.T) {
		rec := doRequest(&fakeService{err: bookings.ErrAccessDenied}, "1", true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		rec := doRequest(&fakeService{err: bookings.ErrInternal}, "1", true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
