package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env      string
	HTTPAddr string
	Store    string
	LogLevel string

	DB        DBConfig
	Redis     RedisConfig
	Booking   BookingConfig
	Rabbit    string
	JaegerURL string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	MaxConns    int
	LockTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type BookingConfig struct {
	LockWait     time.Duration
	LockTTL      time.Duration
	SeatCacheTTL time.Duration
}

// Load reads the process environment, after merging envFile when it exists.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
	}

	var errs []error

	cfg := Config{
		Env:       getEnv("APP_ENV", "dev"),
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		Store:     getEnv("STORE", StorePostgres),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Rabbit:    os.Getenv("RABBITMQ_URL"),
		JaegerURL: os.Getenv("JAEGER_ENDPOINT"),
		DB: DBConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        getEnv("DB_NAME", "movie_booking"),
			MaxConns:    getInt("DB_MAX_CONNS", 25, &errs),
			LockTimeout: getDuration("DB_LOCK_TIMEOUT", 2*time.Second, &errs),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0, &errs),
		},
		Booking: BookingConfig{
			LockWait:     getDuration("LOCK_WAIT", 3*time.Second, &errs),
			LockTTL:      getDuration("LOCK_TTL", 10*time.Second, &errs),
			SeatCacheTTL: getDuration("SEAT_CACHE_TTL", 30*time.Second, &errs),
		},
	}

	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store))
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid int for %s: %q", key, v))
		return fallback
	}

	return n
}

func getDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("invalid duration for %s: %q", key, v))
		return fallback
	}

	return d
}
