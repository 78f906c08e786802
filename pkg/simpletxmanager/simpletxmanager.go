// Package simpletxmanager adapts a plain *sql.DB to the transaction manager.
// Used when metrics are disabled and the database handle is not wrapped by
// pkg/dbmetrics.
package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/bikeservicepro/BSP-BookingService/pkg/dbmetrics"
	"github.com/bikeservicepro/BSP-BookingService/pkg/txmanager"
)

// NewTransactionManager creates a transaction manager over an uninstrumented
// database handle.
func NewTransactionManager(db *sql.DB) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(beginner{db: db})
}

type beginner struct {
	db *sql.DB
}

func (b beginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
