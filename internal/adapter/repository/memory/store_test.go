package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/movie_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/srgjo27/movie_booking/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Seed(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	user := store.AddUser("Vishwajit", "vishwt@gmail.com")
	show, seats := store.AddShow(1, 1, time.Now(), 10)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, int64(1), show.ID)
	require.Len(t, seats, 10)
	assert.Equal(t, int64(10), seats[9].ID)

	ok, err := store.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, 111)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.GetByID(ctx, 1343)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listed, err := store.ListByShow(ctx, show.ID)
	require.NoError(t, err)
	assert.Equal(t, seats, listed)
}

func TestStore_WithinTx_CommitsStagedWrites(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	store.AddUser("u", "u@example.com")
	show, _ := store.AddShow(1, 1, time.Now(), 3)
	booking := domain.NewBooking(uuid.New(), 1, show.ID, []int64{1, 2}, time.Now())

	err := store.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		if err := uow.SetSeatsOccupied(ctx, booking.SeatIDs, true); err != nil {
			return err
		}
		return uow.InsertBooking(ctx, booking)
	})
	require.NoError(t, err)

	seats, err := store.GetByIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, seats[0].Occupied)
	assert.True(t, seats[1].Occupied)
	assert.False(t, seats[2].Occupied)
	assert.Equal(t, 1, seats[0].Version)

	stored, err := store.Bookings().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, stored)
}

func TestStore_WithinTx_RollsBackOnError(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	show, _ := store.AddShow(1, 1, time.Now(), 3)
	booking := domain.NewBooking(uuid.New(), 1, show.ID, []int64{1}, time.Now())
	boom := errors.New("boom")

	err := store.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		require.NoError(t, uow.SetSeatsOccupied(ctx, []int64{1}, true))
		require.NoError(t, uow.InsertBooking(ctx, booking))

		seats, err := uow.LockSeats(ctx, show.ID, []int64{1})
		require.NoError(t, err)
		assert.True(t, seats[0].Occupied, "staged write must be visible inside the transaction")

		return boom
	})
	assert.ErrorIs(t, err, boom)

	seats, err := store.GetByIDs(ctx, []int64{1})
	require.NoError(t, err)
	assert.False(t, seats[0].Occupied)

	_, err = store.Bookings().GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SetSeatsOccupiedIsAllOrNothing(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	show, _ := store.AddShow(1, 1, time.Now(), 3)

	err := store.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		return uow.SetSeatsOccupied(ctx, []int64{2}, true)
	})
	require.NoError(t, err)

	err = store.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		if err := uow.SetSeatsOccupied(ctx, []int64{1, 2}, true); err != nil {
			return err
		}
		t.Fatal("claiming an occupied seat must fail")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrBusy)

	seats, err := store.ListByShow(ctx, show.ID)
	require.NoError(t, err)
	assert.False(t, seats[0].Occupied)
	assert.True(t, seats[1].Occupied)
}

func TestStore_LockSeatsFiltersOtherShows(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	first, _ := store.AddShow(1, 1, time.Now(), 2)
	store.AddShow(2, 1, time.Now(), 2)

	err := store.WithinTx(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		seats, err := uow.LockSeats(ctx, first.ID, []int64{1, 3})
		require.NoError(t, err)
		require.Len(t, seats, 1)
		assert.Equal(t, int64(1), seats[0].ID)
		return nil
	})
	assert.NoError(t, err)
}
