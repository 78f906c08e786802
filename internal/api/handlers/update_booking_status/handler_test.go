package update_booking_status_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	updateBookingStatusHandler "github.com/bikeservicepro/BSP-BookingService/internal/api/handlers/update_booking_status"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	updateBookingStatus "github.com/bikeservicepro/BSP-BookingService/internal/usecase/update_booking_status"
)

type fakeUseCase struct {
	resp *updateBookingStatus.Response
	err  error

	gotReq *updateBookingStatus.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateBookingStatus.Request) (*updateBookingStatus.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(uc *fakeUseCase, bookingID, body string) *httptest.ResponseRecorder {
	h := updateBookingStatusHandler.NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+bookingID+"/status", strings.NewReader(body))
	identity := domain.Identity{UserID: 9, Role: domain.RoleServiceOwner}
	req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		uc := &fakeUseCase{resp: &updateBookingStatus.Response{
			Booking: &domain.Booking{
				ID:             1,
				CustomerID:     7,
				ServiceOwnerID: 9,
				ServiceID:      42,
				BookingDate:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				TimeSlot:       "10:00 AM",
				Status:         domain.StatusConfirmed,
				TotalAmount:    1500,
				Urgency:        domain.UrgencyNormal,
			},
		}}

		rec := doRequest(uc, "1", `{"status": "confirmed"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)

		require.NotNil(t, uc.gotReq)
		assert.Equal(t, int64(1), uc.gotReq.BookingID)
		assert.Equal(t, "confirmed", uc.gotReq.Status)
		assert.Equal(t, int64(9), uc.gotReq.Identity.UserID)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		rec := doRequest(&fakeUseCase{}, "abc", `{"status": "confirmed"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := doRequest(&fakeUseCase{}, "1", `{"status":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("use case error mapping", func(t *testing.T) {
		cases := map[string]struct {
			err  error
			code int
		}{
			"not found":      {updateBookingStatus.ErrBookingNotFound, http.StatusNotFound},
			"access denied":  {updateBookingStatus.ErrAccessDenied, http.StatusForbidden},
			"invalid status": {updateBookingStatus.ErrInvalidStatus, http.StatusBadRequest},
			"terminal state": {updateBookingStatus.ErrTerminalState, http.StatusConflict},
			"slot taken":     {updateBookingStatus.ErrSlotTaken, http.StatusConflict},
			"internal":       {updateBookingStatus.ErrInternal, http.StatusInternalServerError},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				rec := doRequest(&fakeUseCase{err: tc.err}, "1", `{"status": "confirmed"}`)
				assert.Equal(t, tc.code, rec.Code)
			})
		}
	})
}
