package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/movie_booking/internal/adapter/cache"
	"github.com/srgjo27/movie_booking/internal/adapter/handler"
	"github.com/srgjo27/movie_booking/internal/adapter/lock"
	"github.com/srgjo27/movie_booking/internal/adapter/publisher"
	"github.com/srgjo27/movie_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/movie_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/movie_booking/internal/core/ports"
	"github.com/srgjo27/movie_booking/internal/core/services"
	"github.com/srgjo27/movie_booking/internal/platform/config"
	"github.com/srgjo27/movie_booking/internal/platform/database"
	"github.com/srgjo27/movie_booking/internal/platform/logger"
	"github.com/srgjo27/movie_booking/internal/platform/tracing"
)

const serviceName = "movie-booking"

type storage struct {
	repos services.Repositories
	tx    ports.Transactor
	close func() error
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Setup(serviceName, "dev", "info")
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Setup(serviceName, cfg.Env, cfg.LogLevel)

	shutdownTracer, err := tracing.InitTracerProvider(serviceName, cfg.JaegerURL)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}

	store, err := openStorage(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.close()

	var (
		locker    ports.ShowLocker = lock.NewLocalLocker()
		seatCache ports.SeatCache  = cache.NopSeatCache{}
	)

	if cfg.Redis.Enabled() {
		log.Info().Str("addr", cfg.Redis.Addr()).Msg("connecting to redis")

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}

		locker = lock.NewRedisLocker(redisClient, cfg.Booking.LockTTL)
		seatCache = cache.NewSeatCache(redisClient, cfg.Booking.SeatCacheTTL)
		log.Info().Msg("redis connected, using distributed show lock")
	}

	var events ports.EventPublisher = publisher.Nop{}
	if cfg.Rabbit != "" {
		rabbit, err := publisher.NewRabbitMQ(cfg.Rabbit)
		if err != nil {
			return fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		defer rabbit.Close()

		events = rabbit
		log.Info().Str("queue", publisher.QueueName).Msg("publishing booking events")
	}

	bookingService := services.NewBookingService(store.repos, store.tx, locker, seatCache, events,
		services.WithLockWait(cfg.Booking.LockWait),
	)
	seatService := services.NewSeatService(store.repos.Shows, store.repos.Seats, seatCache)

	mux := http.NewServeMux()

	handler.RegisterRoutes(mux, handler.NewBookingHandler(bookingService), handler.NewSeatHandler(seatService))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.RequestLogger(log.Logger)(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("store", cfg.Store).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server startup failed: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := shutdownTracer(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}

	log.Info().Msg("server exiting")

	return nil
}

func openStorage(cfg config.Config) (*storage, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return openMemory(), nil
	case config.StorePostgres:
		return openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
}

// openMemory seeds one user and one show with ten free seats, so a local
// run can book straight away.
func openMemory() *storage {
	store := memory.NewStore()

	user := store.AddUser("demo", "demo@example.com")
	show, seats := store.AddShow(1, 1, time.Now().Add(24*time.Hour), 10)

	log.Info().
		Int64("user_id", user.ID).
		Int64("show_id", show.ID).
		Int("seats", len(seats)).
		Msg("memory store seeded")

	return &storage{
		repos: services.Repositories{Users: store, Shows: store, Seats: store, Bookings: store.Bookings()},
		tx:    store,
		close: func() error { return nil },
	}
}

func openPostgres(cfg config.Config) (*storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.Name,
		MaxConns: cfg.DB.MaxConns,
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &storage{
		repos: services.Repositories{
			Users:    postgres.NewUserRepository(db),
			Shows:    postgres.NewShowRepository(db),
			Seats:    postgres.NewSeatRepository(db),
			Bookings: postgres.NewBookingRepository(db),
		},
		tx:    postgres.NewTransactor(db, cfg.DB.LockTimeout),
		close: db.Close,
	}, nil
}
