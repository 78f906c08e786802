package get_my_bookings

import (
	"errors"
	"net/http"

	"github.com/bikeservicepro/BSP-BookingService/internal/api/handlers"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings"
)

const (
	msgMissingIdentity = "missing authentication"
	msgInvalidStatus   = "invalid status filter"
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

// Handle GET /api/v1/my-bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /my-bookings - Missing identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetMyBookings(r.Context(), identity, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /my-bookings - Invalid status filter: user_id=%d", identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /my-bookings - Failed to get bookings: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /my-bookings - Bookings retrieved: user_id=%d, count=%d", identity.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
