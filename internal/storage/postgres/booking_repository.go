package postgres

import (
	"context"
	"fmt"

	"github.com/HarshitTripathi3008/railway-reservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// ReserveSeats checks and decrements seats_available in a single statement, so
// concurrent reservations on the same train serialize on the row and can never
// jointly drive the counter negative.
func (r *BookingRepository) ReserveSeats(ctx context.Context, trainID string, count int) error {
	const stmt = `
UPDATE trains
SET seats_available = seats_available - $2
WHERE id = $1 AND seats_available >= $2`

	tag, err := r.exec(ctx, stmt, trainID, count)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrTrainNotFound
		}
		return fmt.Errorf("reserve seats: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the train is missing or the seats ran out.
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM trains WHERE id = $1)`
	var exists bool
	if err := r.queryRow(ctx, existsQuery, trainID).Scan(&exists); err != nil {
		return fmt.Errorf("check train: %w", err)
	}
	if !exists {
		return domain.ErrTrainNotFound
	}
	return domain.ErrInsufficientSeats
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking domain.Booking) error {
	const stmt = `
INSERT INTO bookings (id, train_id, passenger_name, contact_info, seats_booked, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.exec(ctx, stmt,
		booking.ID,
		booking.TrainID,
		booking.PassengerName,
		booking.ContactInfo,
		booking.Seats,
		booking.Status,
		booking.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return domain.ErrTrainNotFound
		}
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, bookingID string) (domain.Booking, error) {
	const query = `
SELECT id, train_id, passenger_name, contact_info, seats_booked, status, created_at
FROM bookings
WHERE id = $1`

	var b domain.Booking
	var status string
	err := r.queryRow(ctx, query, bookingID).
		Scan(&b.ID, &b.TrainID, &b.PassengerName, &b.ContactInfo, &b.Seats, &status, &b.CreatedAt)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Booking{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Booking{}, domain.ErrInvalidID
		}
		return domain.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (r *BookingRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *BookingRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
