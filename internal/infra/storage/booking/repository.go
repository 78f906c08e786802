package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bikeservicepro/BSP-BookingService/internal/domain"
	"github.com/bikeservicepro/BSP-BookingService/pkg/dbmetrics"
	"github.com/bikeservicepro/BSP-BookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"customer_id",
	"service_owner_id",
	"service_id",
	"bike_brand",
	"bike_model",
	"bike_year",
	"bike_registration_number",
	"bike_engine_number",
	"bike_chassis_number",
	"booking_date",
	"time_slot",
	"status",
	"total_amount",
	"urgency",
	"customer_address",
	"special_requests",
	"created_at",
	"updated_at",
}

// Repository is the PostgreSQL-backed booking ledger
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts one booking and returns it with id and timestamps filled.
// The bookings table carries a partial unique index over
// (service_id, booking_date, time_slot) scoped to occupying statuses; a
// violation means the slot race was lost and surfaces as ErrSlotTaken.
// When the context carries an open transaction the insert joins it.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"service_owner_id",
			"service_id",
			"bike_brand",
			"bike_model",
			"bike_year",
			"bike_registration_number",
			"bike_engine_number",
			"bike_chassis_number",
			"booking_date",
			"time_slot",
			"status",
			"total_amount",
			"urgency",
			"customer_address",
			"special_requests",
		).
		Values(
			b.CustomerID,
			b.ServiceOwnerID,
			b.ServiceID,
			b.Bike.Brand,
			b.Bike.Model,
			b.Bike.Year,
			b.Bike.RegistrationNumber,
			b.Bike.EngineNumber,
			b.Bike.ChassisNumber,
			b.BookingDate,
			b.TimeSlot,
			b.Status,
			b.TotalAmount,
			b.Urgency,
			b.CustomerAddress,
			b.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches one booking
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetOccupyingForDay fetches the bookings holding slots on (serviceID, date).
// Only the calendar day matters; time of day is stripped before comparison.
// Inside a transaction the rows are read FOR UPDATE so the admission check
// and the subsequent insert act as one atomic step.
func (r *Repository) GetOccupyingForDay(ctx context.Context, serviceID int64, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := date.Truncate(24 * time.Hour)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"booking_date": day}).
		Where(squirrel.Eq{"status": occupying}).
		OrderBy("time_slot ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupyingForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupyingForDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByCustomerID fetches a customer's booking history, newest first.
// Optionally filters by status.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByOwnerWithFilter fetches a service owner's bookings with optional
// service/customer/status/date-range filters and limit-offset pagination,
// newest first
func (r *Repository) GetByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyOwnerFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountByOwnerWithFilter counts the bookings GetByOwnerWithFilter would
// return without pagination. Used for page math in listings.
func (r *Repository) CountByOwnerWithFilter(ctx context.Context, filter domain.OwnerBookingsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyOwnerFilter(psqlbuilder.Select("COUNT(*)").From("bookings"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByOwnerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByOwnerWithFilter - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus moves one booking to status and returns the refreshed
// updated_at timestamp
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrBookingNotFound
		}
		// Re-activating a booking whose slot has been taken in the meantime
		// trips the occupying-slot index.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return time.Time{}, ErrSlotTaken
		}
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return updatedAt, nil
}

func applyOwnerFilter(b squirrel.SelectBuilder, filter domain.OwnerBookingsFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"service_owner_id": filter.OwnerID})

	if filter.ServiceID != nil {
		b = b.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.CustomerID != nil {
		b = b.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.StartDate != nil {
		b = b.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		b = b.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}

	return b
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.ServiceOwnerID,
		&b.ServiceID,
		&b.Bike.Brand,
		&b.Bike.Model,
		&b.Bike.Year,
		&b.Bike.RegistrationNumber,
		&b.Bike.EngineNumber,
		&b.Bike.ChassisNumber,
		&b.BookingDate,
		&b.TimeSlot,
		&b.Status,
		&b.TotalAmount,
		&b.Urgency,
		&b.CustomerAddress,
		&b.SpecialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
