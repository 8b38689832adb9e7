package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/srgjo27/movie_booking/internal/core/ports"
	"github.com/srgjo27/movie_booking/internal/platform/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/srgjo27/movie_booking/internal/core/services")

const defaultLockWait = 3 * time.Second

type Repositories struct {
	Users    ports.UserRepository
	Shows    ports.ShowRepository
	Seats    ports.SeatRepository
	Bookings ports.BookingRepository
}

// BookingService is the only writer of seat occupancy and of the booking
// ledger. Every Book or Cancel runs under the show lock and inside one
// transaction.
type BookingService struct {
	users    ports.UserRepository
	shows    ports.ShowRepository
	seats    ports.SeatRepository
	bookings ports.BookingRepository
	tx       ports.Transactor
	locker   ports.ShowLocker
	cache    ports.SeatCache
	events   ports.EventPublisher

	lockWait time.Duration
	now      func() time.Time
	newID    func() uuid.UUID
}

type Option func(*BookingService)

// WithLockWait bounds how long Book and Cancel wait for the show lock
// before failing with domain.ErrBusy.
func WithLockWait(d time.Duration) Option {
	return func(s *BookingService) {
		if d > 0 {
			s.lockWait = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *BookingService) { s.now = now }
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *BookingService) { s.newID = newID }
}

func NewBookingService(repos Repositories, tx ports.Transactor, locker ports.ShowLocker, cache ports.SeatCache, events ports.EventPublisher, opts ...Option) *BookingService {
	s := &BookingService{
		users:    repos.Users,
		shows:    repos.Shows,
		seats:    repos.Seats,
		bookings: repos.Bookings,
		tx:       tx,
		locker:   locker,
		cache:    cache,
		events:   events,
		lockWait: defaultLockWait,
		now:      time.Now,
		newID:    uuid.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Book claims every seat in seatIDs for userID or none of them. When any
// seat is taken the error is a *domain.ConflictError naming those seats.
func (s *BookingService) Book(ctx context.Context, userID, showID int64, seatIDs []int64) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Book", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("show.id", showID),
		attribute.Int("seats.requested", len(seatIDs)),
	))
	defer span.End()

	logger := log.Ctx(ctx).With().Int64("user_id", userID).Int64("show_id", showID).Ints64("seat_ids", seatIDs).Logger()

	booking, err := s.book(ctx, userID, showID, seatIDs)
	metrics.BookingsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		recordError(span, err)
		logFailure(&logger, err, "booking rejected")
		return nil, err
	}

	metrics.SeatsClaimedTotal.Add(float64(len(booking.SeatIDs)))
	span.SetAttributes(attribute.String("booking.id", booking.ID.String()))
	logger.Info().Str("booking_id", booking.ID.String()).Msg("booking created")

	s.publish(ctx, domain.EventBookingCreated, booking)

	return booking, nil
}

func (s *BookingService) book(ctx context.Context, userID, showID int64, seatIDs []int64) (*domain.Booking, error) {
	if err := domain.ValidateSeatSelection(seatIDs); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if !exists {
		return nil, domain.NewNotFound(domain.ResourceUser, userID)
	}

	if _, err := s.shows.GetByID(ctx, showID); err != nil {
		return nil, err
	}

	seats, err := s.seats.GetByIDs(ctx, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}
	if err := checkSeatsBelong(showID, seatIDs, seats); err != nil {
		return nil, err
	}

	unlock, err := s.lockShow(ctx, showID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	booking := domain.NewBooking(s.newID(), userID, showID, seatIDs, s.now())

	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return claimSeats(ctx, uow, booking)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSeats(ctx, showID)

	return booking, nil
}

// claimSeats re-reads the seats under row locks; the pre-check in book may
// be stale by the time the lock is held.
func claimSeats(ctx context.Context, uow ports.UnitOfWork, booking *domain.Booking) error {
	seats, err := uow.LockSeats(ctx, booking.ShowID, booking.SeatIDs)
	if err != nil {
		return err
	}

	byID := make(map[int64]domain.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}

	var taken []int64
	for _, id := range booking.SeatIDs {
		seat, ok := byID[id]
		if !ok {
			return domain.NewNotFound(domain.ResourceSeat, id)
		}
		if !seat.IsAvailable() {
			taken = append(taken, id)
		}
	}

	if len(taken) > 0 {
		return &domain.ConflictError{SeatIDs: taken}
	}

	if err := uow.SetSeatsOccupied(ctx, booking.SeatIDs, true); err != nil {
		return err
	}

	return uow.InsertBooking(ctx, booking)
}

func checkSeatsBelong(showID int64, requested []int64, found []domain.Seat) error {
	byID := make(map[int64]domain.Seat, len(found))
	for _, seat := range found {
		byID[seat.ID] = seat
	}

	for _, id := range requested {
		seat, ok := byID[id]
		if !ok {
			return domain.NewNotFound(domain.ResourceSeat, id)
		}
		if seat.ShowID != showID {
			return fmt.Errorf("%w: seat %d does not belong to show %d", domain.ErrInvalidData, id, showID)
		}
	}

	return nil
}

// Cancel voids an active booking and frees its seats in one transaction.
// Cancelling twice fails with domain.ErrInvalidState.
func (s *BookingService) Cancel(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Cancel", trace.WithAttributes(
		attribute.String("booking.id", bookingID.String()),
	))
	defer span.End()

	logger := log.Ctx(ctx).With().Str("booking_id", bookingID.String()).Logger()

	booking, err := s.cancel(ctx, bookingID)
	metrics.CancellationsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		recordError(span, err)
		logFailure(&logger, err, "cancellation rejected")
		return nil, err
	}

	logger.Info().Int64("show_id", booking.ShowID).Ints64("seat_ids", booking.SeatIDs).Msg("booking cancelled")

	s.publish(ctx, domain.EventBookingCancelled, booking)

	return booking, nil
}

func (s *BookingService) cancel(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	existing, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := existing.EnsureActive(); err != nil {
		return nil, err
	}

	unlock, err := s.lockShow(ctx, existing.ShowID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var cancelled *domain.Booking
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		b, err := uow.LockBooking(ctx, bookingID)
		if err != nil {
			return err
		}

		if err := b.Cancel(s.now()); err != nil {
			return err
		}

		// Seats are locked in the same order a claim takes them.
		if _, err := uow.LockSeats(ctx, b.ShowID, b.SeatIDs); err != nil {
			return err
		}

		if err := uow.SetSeatsOccupied(ctx, b.SeatIDs, false); err != nil {
			return err
		}

		if err := uow.UpdateBooking(ctx, b); err != nil {
			return err
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSeats(ctx, cancelled.ShowID)

	return cancelled, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *BookingService) lockShow(ctx context.Context, showID int64) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	start := time.Now()
	unlock, err := s.locker.Lock(lockCtx, showID)
	metrics.LockWaitSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	return unlock, nil
}

// invalidateSeats drops the cached seat map. A failure only delays
// freshness until the entry expires.
func (s *BookingService) invalidateSeats(ctx context.Context, showID int64) {
	if err := s.cache.Invalidate(ctx, showID); err != nil {
		log.Ctx(ctx).Warn().Err(err).Int64("show_id", showID).Msg("failed to invalidate seat cache")
	}
}

func (s *BookingService) publish(ctx context.Context, eventType domain.EventType, booking *domain.Booking) {
	event := domain.NewBookingEvent(eventType, booking, s.now())
	if err := s.events.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("event", string(eventType)).Str("booking_id", booking.ID.String()).Msg("failed to publish booking event")
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrConflict):
		return metrics.ResultConflict
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case errors.Is(err, domain.ErrInvalidData):
		return metrics.ResultInvalid
	case errors.Is(err, domain.ErrInvalidState):
		return metrics.ResultInvalidState
	case errors.Is(err, domain.ErrBusy):
		return metrics.ResultBusy
	default:
		return metrics.ResultError
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// logFailure keeps caller mistakes at info and reserves error for failures
// of the service itself.
func logFailure(logger *zerolog.Logger, err error, msg string) {
	if outcome(err) == metrics.ResultError {
		logger.Error().Err(err).Msg(msg)
		return
	}
	logger.Info().Err(err).Msg(msg)
}
