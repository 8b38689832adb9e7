package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

const bookingColumns = `id, user_id, show_id, seat_ids, status, created_at, cancelled_at`

type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE id = $1
	`

	return scanBooking(ctx, r.db, query, bookingID)
}

func scanBooking(ctx context.Context, q rowQueryer, query string, bookingID uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime

	err := q.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID,
		&b.UserID,
		&b.ShowID,
		pq.Array(&b.SeatIDs),
		&b.Status,
		&b.CreatedAt,
		&cancelledAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: domain.ResourceBooking, ID: bookingID.String()}
		}

		return nil, translate(err)
	}

	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}

	return &b, nil
}
