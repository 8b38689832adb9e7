package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess      = "success"
	ResultConflict     = "conflict"
	ResultNotFound     = "not_found"
	ResultInvalid      = "invalid"
	ResultInvalidState = "invalid_state"
	ResultBusy         = "busy"
	ResultError        = "error"
)

var (
	BookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movie_booking",
		Name:      "bookings_total",
		Help:      "Booking attempts by outcome.",
	}, []string{"result"})

	CancellationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movie_booking",
		Name:      "cancellations_total",
		Help:      "Cancellation attempts by outcome.",
	}, []string{"result"})

	SeatsClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movie_booking",
		Name:      "seats_claimed_total",
		Help:      "Seats marked occupied by committed bookings.",
	})

	LockWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "movie_booking",
		Name:      "show_lock_wait_seconds",
		Help:      "Time spent waiting for exclusive access to a show.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
	})

	SeatCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movie_booking",
		Name:      "seat_cache_lookups_total",
		Help:      "Seat map cache lookups by outcome.",
	}, []string{"outcome"})
)
