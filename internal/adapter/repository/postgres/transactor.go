package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/srgjo27/movie_booking/internal/core/ports"
)

// Transactor runs units of work in READ COMMITTED transactions. Isolation
// for the claim comes from SELECT ... FOR UPDATE on the seat rows, taken in
// id order so concurrent claims cannot deadlock each other.
type Transactor struct {
	db          *sql.DB
	lockTimeout time.Duration
}

func NewTransactor(db *sql.DB, lockTimeout time.Duration) *Transactor {
	return &Transactor{db: db, lockTimeout: lockTimeout}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, uow ports.UnitOfWork) error) error {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if t.lockTimeout > 0 {
		// SET does not accept bind parameters.
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", t.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	if err := fn(ctx, &unitOfWork{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", translate(err))
	}

	return nil
}

type unitOfWork struct {
	tx *sql.Tx
}

func (u *unitOfWork) LockSeats(ctx context.Context, showID int64, seatIDs []int64) ([]domain.Seat, error) {
	query := `
	SELECT ` + seatColumns + `
	FROM seats
	WHERE show_id = $1 AND id = ANY($2)
	ORDER BY id
	FOR UPDATE
	`

	return querySeats(ctx, u.tx, query, showID, pq.Array(seatIDs))
}

// SetSeatsOccupied only touches seats whose flag differs from occupied, so
// a row count short of len(seatIDs) means a seat was not in the expected
// state and the transaction must not commit.
func (u *unitOfWork) SetSeatsOccupied(ctx context.Context, seatIDs []int64, occupied bool) error {
	query := `
	UPDATE seats
	SET occupied = $1,
		version = version + 1
	WHERE id = ANY($2) AND occupied <> $1
	`

	result, err := u.tx.ExecContext(ctx, query, occupied, pq.Array(seatIDs))
	if err != nil {
		return translate(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected != int64(len(seatIDs)) {
		return fmt.Errorf("%w: updated %d of %d seats", domain.ErrBusy, rowsAffected, len(seatIDs))
	}

	return nil
}

func (u *unitOfWork) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, user_id, show_id, seat_ids, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := u.tx.ExecContext(ctx, query,
		booking.ID, booking.UserID, booking.ShowID, pq.Array(booking.SeatIDs), booking.Status, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", translate(err))
	}

	return nil
}

func (u *unitOfWork) LockBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE id = $1
	FOR UPDATE
	`

	return scanBooking(ctx, u.tx, query, bookingID)
}

func (u *unitOfWork) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	UPDATE bookings
	SET status = $1, cancelled_at = $2
	WHERE id = $3
	`

	result, err := u.tx.ExecContext(ctx, query, booking.Status, booking.CancelledAt, booking.ID)
	if err != nil {
		return translate(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return &domain.NotFoundError{Resource: domain.ResourceBooking, ID: booking.ID.String()}
	}

	return nil
}
