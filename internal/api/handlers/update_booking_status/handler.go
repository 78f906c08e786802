package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bikeservicepro/BSP-BookingService/internal/api/handlers"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	updateBookingStatus "github.com/bikeservicepro/BSP-BookingService/internal/usecase/update_booking_status"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgMissingIdentity    = "missing authentication"
	msgNotFound           = "booking not found"
	msgForbidden          = "you can only update bookings for your own services"
	msgInvalidStatus      = "invalid status value"
	msgTerminalState      = "booking is already completed or cancelled"
	msgSlotTaken          = "this time slot is already booked"
)

type Handler struct {
	useCase UpdateBookingStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Missing identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBookingStatus.Request{
		Identity:  identity,
		BookingID: bookingID,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBookingStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBookingStatus.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Access denied: booking_id=%d, user_id=%d",
				bookingID, identity.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBookingStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%d, status=%q",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateBookingStatus.ErrTerminalState):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Terminal state: booking_id=%d, status=%q",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgTerminalState)

		case errors.Is(err, updateBookingStatus.ErrSlotTaken):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Slot taken on re-activation: booking_id=%d, status=%q",
				bookingID, req.Status)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%d, user_id=%d, status=%s",
		bookingID, identity.UserID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, response)
}
