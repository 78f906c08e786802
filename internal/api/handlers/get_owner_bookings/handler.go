package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/bikeservicepro/BSP-BookingService/internal/api/handlers"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings"
)

const (
	msgMissingIdentity = "missing authentication"
	msgInvalidParams   = "invalid query parameters"
	msgForbidden       = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: serviceId, customerId, status, startDate, endDate, page, perPage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	q := r.URL.Query()
	req, err := ToServiceRequest(
		q.Get("serviceId"),
		q.Get("customerId"),
		q.Get("status"),
		q.Get("startDate"),
		q.Get("endDate"),
		q.Get("page"),
		q.Get("perPage"),
	)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid query parameters: user_id=%d, error=%v", identity.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetOwnerBookings(r.Context(), identity, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d, role=%s", identity.UserID, identity.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: user_id=%d, count=%d, total=%d",
		identity.UserID, len(result.Bookings), result.Pagination.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
