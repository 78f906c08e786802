package create_booking

import (
	"errors"
	"net/http"

	"github.com/bikeservicepro/BSP-BookingService/internal/api/handlers"
	"github.com/bikeservicepro/BSP-BookingService/internal/api/middleware"
	createBooking "github.com/bikeservicepro/BSP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date format, expected YYYY-MM-DD"
	msgMissingIdentity    = "missing authentication"
	msgCustomersOnly      = "only customers can book services"
	msgServiceNotFound    = "service not found"
	msgServiceInactive    = "service is currently not available"
	msgDateInPast         = "booking date cannot be in the past"
	msgInvalidTimeSlot    = "selected time slot is not offered by this service"
	msgSlotTaken          = "this time slot is already booked, please select another slot"
	msgInvalidInput       = "invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing identity in context")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, service_id=%d, date=%s, slot=%s",
				identity.UserID, req.ServiceID, req.BookingDate, req.TimeSlot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrCustomersOnly):
			h.logger.Warn("POST /bookings - Non-customer caller: user_id=%d, role=%s", identity.UserID, identity.Role)
			handlers.RespondForbidden(w, msgCustomersOnly)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%d, service_id=%d", identity.UserID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: user_id=%d, service_id=%d", identity.UserID, req.ServiceID)
			handlers.RespondConflict(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d, date=%s", identity.UserID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, service_id=%d, slot=%s",
				identity.UserID, req.ServiceID, req.TimeSlot)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, service_id=%d, error=%v",
				identity.UserID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, service_id=%d, date=%s, slot=%s",
		result.Booking.ID, identity.UserID, req.ServiceID, req.BookingDate, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
