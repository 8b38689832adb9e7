package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

const seatColumns = `id, show_id, number, occupied, version`

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type SeatRepository struct {
	db *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// GetByIDs returns the seats that exist among seatIDs, ordered by id.
// Missing ids are simply absent from the result.
func (r *SeatRepository) GetByIDs(ctx context.Context, seatIDs []int64) ([]domain.Seat, error) {
	query := `
	SELECT ` + seatColumns + `
	FROM seats
	WHERE id = ANY($1)
	ORDER BY id
	`

	return querySeats(ctx, r.db, query, pq.Array(seatIDs))
}

func (r *SeatRepository) ListByShow(ctx context.Context, showID int64) ([]domain.Seat, error) {
	query := `
	SELECT ` + seatColumns + `
	FROM seats
	WHERE show_id = $1
	ORDER BY id
	`

	return querySeats(ctx, r.db, query, showID)
}

func querySeats(ctx context.Context, q queryer, query string, args ...any) ([]domain.Seat, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}

	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(
			&seat.ID,
			&seat.ShowID,
			&seat.Number,
			&seat.Occupied,
			&seat.Version,
		); err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}

	return seats, nil
}
