package get_owner_bookings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeservicepro/BSP-BookingService/internal/api/handlers/get_owner_bookings"
)

func TestToServiceRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := get_owner_bookings.ToServiceRequest("", "", "", "", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, req.Page)
		assert.Equal(t, 20, req.PerPage)
		assert.Nil(t, req.ServiceID)
		assert.Nil(t, req.Status)
	})

	t.Run("full filter", func(t *testing.T) {
		req, err := get_owner_bookings.ToServiceRequest("42", "7", "pending", "2026-09-01", "2026-09-30", "3", "50")
		require.NoError(t, err)
		require.NotNil(t, req.ServiceID)
		assert.Equal(t, int64(42), *req.ServiceID)
		require.NotNil(t, req.CustomerID)
		assert.Equal(t, int64(7), *req.CustomerID)
		require.NotNil(t, req.Status)
		assert.Equal(t, "pending", *req.Status)
		require.NotNil(t, req.StartDate)
		assert.Equal(t, "2026-09-01", req.StartDate.Format("2006-01-02"))
		assert.Equal(t, 3, req.Page)
		assert.Equal(t, 50, req.PerPage)
	})

	t.Run("per page is capped", func(t *testing.T) {
		req, err := get_owner_bookings.ToServiceRequest("", "", "", "", "", "1", "500")
		require.NoError(t, err)
		assert.Equal(t, 100, req.PerPage)
	})

	t.Run("bad values rejected", func(t *testing.T) {
		_, err := get_owner_bookings.ToServiceRequest("abc", "", "", "", "", "", "")
		assert.Error(t, err)

		_, err = get_owner_bookings.ToServiceRequest("", "", "", "September 1st", "", "", "")
		assert.Error(t, err)

		_, err = get_owner_bookings.ToServiceRequest("", "", "", "", "", "one", "")
		assert.Error(t, err)
	})
}
