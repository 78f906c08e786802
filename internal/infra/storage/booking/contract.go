package booking

import (
	"context"
	"database/sql"

	"github.com/bikeservicepro/BSP-BookingService/pkg/dbmetrics"
)

// Database interfaces come from dbmetrics so the repository works with both
// the instrumented and the plain handle
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
