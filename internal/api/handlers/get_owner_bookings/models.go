package get_owner_bookings

import (
	"strconv"
	"time"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/internal/service/bookings/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

// ToServiceRequest builds the listing request from query parameters
func ToServiceRequest(
	serviceIDStr string,
	customerIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	pageStr string,
	perPageStr string,
) (*models.GetOwnerBookingsRequest, error) {
	req := &models.GetOwnerBookingsRequest{
		Page:    defaultPage,
		PerPage: defaultPerPage,
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	if customerIDStr != "" {
		customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		if page > 0 {
			req.Page = page
		}
	}

	if perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil {
			return nil, err
		}
		if perPage > 0 {
			req.PerPage = perPage
		}
		if req.PerPage > maxPerPage {
			req.PerPage = maxPerPage
		}
	}

	return req, nil
}
