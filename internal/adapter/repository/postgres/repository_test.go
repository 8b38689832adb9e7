package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/srgjo27/movie_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return db, mock
}

func TestUserRepository_Exists(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShowRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewShowRepository(db)

	mock.ExpectQuery("SELECT id, movie_id, screen_id, starts_at").
		WithArgs(int64(1343)).
		WillReturnError(sql.ErrNoRows)

	show, err := repo.GetByID(context.Background(), 1343)
	assert.Nil(t, show)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "show 1343 not found")
}

func TestShowRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewShowRepository(db)
	startsAt := time.Date(2020, 12, 3, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, movie_id, screen_id, starts_at").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "movie_id", "screen_id", "starts_at"}).AddRow(1, 7, 2, startsAt))

	show, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.Show{ID: 1, MovieID: 7, ScreenID: 2, StartsAt: startsAt}, show)
}

func TestSeatRepository_ListByShow(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewSeatRepository(db)

	rows := sqlmock.NewRows([]string{"id", "show_id", "number", "occupied", "version"}).
		AddRow(1, 1, "A1", false, 0).
		AddRow(2, 1, "A2", true, 1)

	mock.ExpectQuery("FROM seats\\s+WHERE show_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	seats, err := repo.ListByShow(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.Equal(t, domain.Seat{ID: 2, ShowID: 1, Number: "A2", Occupied: true, Version: 1}, seats[1])
}

func TestSeatRepository_GetByIDs(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewSeatRepository(db)

	mock.ExpectQuery("FROM seats\\s+WHERE id = ANY\\(\\$1\\)").
		WithArgs("{5,9}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "show_id", "number", "occupied", "version"}).AddRow(5, 1, "A5", false, 0))

	seats, err := repo.GetByIDs(context.Background(), []int64{5, 9})
	require.NoError(t, err)
	assert.Equal(t, []domain.Seat{{ID: 5, ShowID: 1, Number: "A5"}}, seats)
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)
	id := uuid.New()
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cancelledAt := createdAt.Add(time.Hour)

	mock.ExpectQuery("FROM bookings\\s+WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "show_id", "seat_ids", "status", "created_at", "cancelled_at"}).
			AddRow(id.String(), 1, 1, "{5,6}", "CANCELLED", createdAt, cancelledAt))

	b, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, []int64{5, 6}, b.SeatIDs)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, cancelledAt, *b.CancelledAt)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)
	id := uuid.New()

	mock.ExpectQuery("FROM bookings").WithArgs(id).WillReturnError(sql.ErrNoRows)

	b, err := repo.GetByID(context.Background(), id)
	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
