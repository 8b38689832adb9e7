package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id BIGSERIAL PRIMARY KEY,
		movie_id BIGINT NOT NULL,
		screen_id BIGINT NOT NULL,
		starts_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS seats (
		id BIGSERIAL PRIMARY KEY,
		show_id BIGINT NOT NULL REFERENCES shows(id),
		number TEXT NOT NULL DEFAULT '',
		occupied BOOLEAN NOT NULL DEFAULT FALSE,
		version INT NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_seats_show_id ON seats (show_id)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		show_id BIGINT NOT NULL REFERENCES shows(id),
		seat_ids BIGINT[] NOT NULL CHECK (cardinality(seat_ids) > 0),
		status TEXT NOT NULL CHECK (status IN ('ACTIVE', 'CANCELLED')),
		created_at TIMESTAMPTZ NOT NULL,
		cancelled_at TIMESTAMPTZ
	)`,
}

// Migrate creates the tables the booking core reads and writes.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
