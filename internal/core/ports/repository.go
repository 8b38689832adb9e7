package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

type UserRepository interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

type ShowRepository interface {
	GetByID(ctx context.Context, showID int64) (*domain.Show, error)
}

type SeatRepository interface {
	GetByIDs(ctx context.Context, seatIDs []int64) ([]domain.Seat, error)
	ListByShow(ctx context.Context, showID int64) ([]domain.Seat, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
}

// UnitOfWork is the set of mutations available inside one transaction.
// Seats and bookings read through it are locked until the transaction ends.
type UnitOfWork interface {
	LockSeats(ctx context.Context, showID int64, seatIDs []int64) ([]domain.Seat, error)
	SetSeatsOccupied(ctx context.Context, seatIDs []int64, occupied bool) error
	InsertBooking(ctx context.Context, booking *domain.Booking) error
	LockBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) error
}

// Transactor runs fn in a single transaction. fn returning an error rolls
// back every write made through the UnitOfWork.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
