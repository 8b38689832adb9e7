package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/srgjo27/movie_booking/internal/core/ports"
	"github.com/srgjo27/movie_booking/internal/platform/metrics"
	"golang.org/x/sync/singleflight"
)

type ShowSeats struct {
	ShowID    int64
	Seats     []domain.Seat
	Available int
}

// SeatService serves seat maps for display. Bookings never read through it:
// the cache may lag behind a commit until the entry is invalidated.
type SeatService struct {
	shows ports.ShowRepository
	seats ports.SeatRepository
	cache ports.SeatCache
	fill  singleflight.Group
}

func NewSeatService(shows ports.ShowRepository, seats ports.SeatRepository, cache ports.SeatCache) *SeatService {
	return &SeatService{shows: shows, seats: seats, cache: cache}
}

func (s *SeatService) ListSeats(ctx context.Context, showID int64) (*ShowSeats, error) {
	seats, hit, err := s.cache.GetSeats(ctx, showID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Int64("show_id", showID).Msg("seat cache read failed")
	}

	if hit {
		metrics.SeatCacheLookups.WithLabelValues("hit").Inc()
		return newShowSeats(showID, seats), nil
	}
	metrics.SeatCacheLookups.WithLabelValues("miss").Inc()

	// The fill is shared by every caller waiting on this show, so it must
	// outlive the one that started it.
	fillCtx := context.WithoutCancel(ctx)
	ch := s.fill.DoChan(strconv.FormatInt(showID, 10), func() (any, error) {
		return s.load(fillCtx, showID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return newShowSeats(showID, res.Val.([]domain.Seat)), nil
	}
}

// load reads the seat map from the store and caches it unless the map was
// invalidated while it was being read.
func (s *SeatService) load(ctx context.Context, showID int64) ([]domain.Seat, error) {
	logger := log.Ctx(ctx).With().Int64("show_id", showID).Logger()

	gen, genErr := s.cache.Generation(ctx, showID)
	if genErr != nil {
		logger.Warn().Err(genErr).Msg("seat cache generation read failed")
	}

	if _, err := s.shows.GetByID(ctx, showID); err != nil {
		return nil, err
	}

	seats, err := s.seats.ListByShow(ctx, showID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return seats, nil
	}

	stored, err := s.cache.SetSeats(ctx, showID, gen, seats)
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("seat cache write failed")
	case !stored:
		logger.Debug().Msg("seat map changed during fill, not cached")
	}

	return seats, nil
}

func newShowSeats(showID int64, seats []domain.Seat) *ShowSeats {
	return &ShowSeats{
		ShowID:    showID,
		Seats:     seats,
		Available: domain.CountAvailable(seats),
	}
}
