// Package memory keeps users, shows, seats and bookings in process memory.
// It implements the same ports as the postgres adapters. A transaction holds
// the store's write lock for its whole duration and stages writes until it
// commits.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/srgjo27/movie_booking/internal/core/ports"
)

type Store struct {
	mu       sync.RWMutex
	users    map[int64]domain.User
	shows    map[int64]domain.Show
	seats    map[int64]domain.Seat
	bookings map[uuid.UUID]domain.Booking

	nextUserID int64
	nextShowID int64
	nextSeatID int64
}

func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		shows:    make(map[int64]domain.Show),
		seats:    make(map[int64]domain.Seat),
		bookings: make(map[uuid.UUID]domain.Booking),
	}
}

// AddUser registers a user and returns it with its assigned id.
func (s *Store) AddUser(name, email string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	u := domain.User{ID: s.nextUserID, Name: name, Email: email}
	s.users[u.ID] = u

	return u
}

// AddShow schedules a show with seatCount free seats numbered 1..seatCount.
func (s *Store) AddShow(movieID, screenID int64, startsAt time.Time, seatCount int) (domain.Show, []domain.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextShowID++
	show := domain.Show{ID: s.nextShowID, MovieID: movieID, ScreenID: screenID, StartsAt: startsAt}
	s.shows[show.ID] = show

	seats := make([]domain.Seat, 0, seatCount)
	for i := 1; i <= seatCount; i++ {
		s.nextSeatID++
		seat := domain.Seat{ID: s.nextSeatID, ShowID: show.ID, Number: fmt.Sprintf("S%d", i)}
		s.seats[seat.ID] = seat
		seats = append(seats, seat)
	}

	return show, seats
}

func (s *Store) Exists(ctx context.Context, userID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) GetByID(ctx context.Context, showID int64) (*domain.Show, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	show, ok := s.shows[showID]
	if !ok {
		return nil, domain.NewNotFound(domain.ResourceShow, showID)
	}

	return &show, nil
}

func (s *Store) GetByIDs(ctx context.Context, seatIDs []int64) ([]domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seats := make([]domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		if seat, ok := s.seats[id]; ok {
			seats = append(seats, seat)
		}
	}
	sortSeats(seats)

	return seats, nil
}

func (s *Store) ListByShow(ctx context.Context, showID int64) ([]domain.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var seats []domain.Seat
	for _, seat := range s.seats {
		if seat.ShowID == showID {
			seats = append(seats, seat)
		}
	}
	sortSeats(seats)

	return seats, nil
}

// Bookings exposes the booking ledger under the BookingRepository port;
// Store itself already uses GetByID for shows.
func (s *Store) Bookings() ports.BookingRepository {
	return bookingLedger{s}
}

type bookingLedger struct {
	s *Store
}

func (l bookingLedger) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	b, ok := l.s.bookings[bookingID]
	if !ok {
		return nil, &domain.NotFoundError{Resource: domain.ResourceBooking, ID: bookingID.String()}
	}

	return cloneBooking(b), nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, uow ports.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	u := &unitOfWork{
		store:    s,
		seats:    make(map[int64]domain.Seat),
		bookings: make(map[uuid.UUID]domain.Booking),
	}

	if err := fn(ctx, u); err != nil {
		return err
	}

	for id, seat := range u.seats {
		s.seats[id] = seat
	}
	for id, b := range u.bookings {
		s.bookings[id] = b
	}

	return nil
}

// unitOfWork reads through its staged writes; the store lock is already
// held by WithinTx.
type unitOfWork struct {
	store    *Store
	seats    map[int64]domain.Seat
	bookings map[uuid.UUID]domain.Booking
}

func (u *unitOfWork) seat(id int64) (domain.Seat, bool) {
	if seat, ok := u.seats[id]; ok {
		return seat, true
	}
	seat, ok := u.store.seats[id]
	return seat, ok
}

func (u *unitOfWork) booking(id uuid.UUID) (domain.Booking, bool) {
	if b, ok := u.bookings[id]; ok {
		return b, true
	}
	b, ok := u.store.bookings[id]
	return b, ok
}

func (u *unitOfWork) LockSeats(ctx context.Context, showID int64, seatIDs []int64) ([]domain.Seat, error) {
	seats := make([]domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		if seat, ok := u.seat(id); ok && seat.ShowID == showID {
			seats = append(seats, seat)
		}
	}
	sortSeats(seats)

	return seats, nil
}

func (u *unitOfWork) SetSeatsOccupied(ctx context.Context, seatIDs []int64, occupied bool) error {
	staged := make([]domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		seat, ok := u.seat(id)
		if !ok {
			return domain.NewNotFound(domain.ResourceSeat, id)
		}
		if seat.Occupied == occupied {
			return fmt.Errorf("%w: seat %d already has occupied=%t", domain.ErrBusy, id, occupied)
		}
		seat.Occupied = occupied
		seat.Version++
		staged = append(staged, seat)
	}

	for _, seat := range staged {
		u.seats[seat.ID] = seat
	}

	return nil
}

func (u *unitOfWork) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	if _, exists := u.booking(booking.ID); exists {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	u.bookings[booking.ID] = *cloneBooking(*booking)
	return nil
}

func (u *unitOfWork) LockBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	b, ok := u.booking(bookingID)
	if !ok {
		return nil, &domain.NotFoundError{Resource: domain.ResourceBooking, ID: bookingID.String()}
	}

	return cloneBooking(b), nil
}

func (u *unitOfWork) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	if _, ok := u.booking(booking.ID); !ok {
		return &domain.NotFoundError{Resource: domain.ResourceBooking, ID: booking.ID.String()}
	}

	u.bookings[booking.ID] = *cloneBooking(*booking)
	return nil
}

func cloneBooking(b domain.Booking) *domain.Booking {
	b.SeatIDs = append([]int64(nil), b.SeatIDs...)
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		b.CancelledAt = &at
	}
	return &b
}

func sortSeats(seats []domain.Seat) {
	sort.Slice(seats, func(i, j int) bool { return seats[i].ID < seats[j].ID })
}
