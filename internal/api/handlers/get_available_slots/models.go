package get_available_slots

import (
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	getAvailableSlots "github.com/bikeservicepro/BSP-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ServiceID      int64    `json:"serviceId"`
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest builds the use case request from path and query values
func ToUseCaseRequest(serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.AvailableSlots
	if slots == nil {
		slots = []string{}
	}

	return &AvailableSlotsResponse{
		ServiceID:      resp.ServiceID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
}
