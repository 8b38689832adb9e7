package ports

import (
	"context"

	"github.com/srgjo27/movie_booking/internal/core/domain"
)

// ShowLocker grants exclusive access to the seats of one show. Lock blocks
// until access is granted or ctx is done, in which case it returns an error
// wrapping domain.ErrBusy.
type ShowLocker interface {
	Lock(ctx context.Context, showID int64) (unlock func(), err error)
}

// SeatCache holds seat maps for display. A fill reads Generation before
// loading seats and passes it to SetSeats, which drops the write when
// Invalidate ran in between.
type SeatCache interface {
	GetSeats(ctx context.Context, showID int64) ([]domain.Seat, bool, error)
	Generation(ctx context.Context, showID int64) (int64, error)
	SetSeats(ctx context.Context, showID, gen int64, seats []domain.Seat) (bool, error)
	Invalidate(ctx context.Context, showID int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
