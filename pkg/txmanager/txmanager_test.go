package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	t.Parallel()

	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}
	storageErr := errors.New("storage: failed to execute query")
	domainErr := errors.New("usecase: internal error")

	tests := map[string]struct {
		err  error
		want bool
	}{
		"bare serialization failure": {serialization, true},
		"bare deadlock":              {deadlock, true},
		"wrapped by storage layer": {
			fmt.Errorf("%w: execute query: %w", storageErr, serialization),
			true,
		},
		"wrapped by storage then usecase": {
			fmt.Errorf("%w: failed to get bookings: %w",
				domainErr,
				fmt.Errorf("%w: execute query: %w", storageErr, serialization)),
			true,
		},
		"deadlock through both layers": {
			fmt.Errorf("%w: failed to create booking: %w",
				domainErr,
				fmt.Errorf("%w: execute insert: %w", storageErr, deadlock)),
			true,
		},
		"unique violation": {&pq.Error{Code: "23505"}, false},
		"plain error":      {errors.New("connection refused"), false},
		"nil":              {nil, false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsSerializationFailure(tc.err))
		})
	}
}
