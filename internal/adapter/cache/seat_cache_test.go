package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/movie_booking/internal/adapter/cache"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCache_Miss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSeatCache(db, time.Minute)

	mockRedis.ExpectGet("seats:1").RedisNil()

	seats, hit, err := c.GetSeats(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, seats)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func newMiniredisCache(t *testing.T, ttl time.Duration) (*cache.SeatCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewSeatCache(client, ttl), mr
}

func TestSeatCache_SetThenGet(t *testing.T) {
	c, mr := newMiniredisCache(t, 30*time.Second)
	ctx := context.Background()
	seats := []domain.Seat{{ID: 1, ShowID: 1, Number: "S1"}, {ID: 2, ShowID: 1, Number: "S2", Occupied: true, Version: 1}}

	gen, err := c.Generation(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	stored, err := c.SetSeats(ctx, 1, gen, seats)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, 30*time.Second, mr.TTL("seats:1"))

	got, hit, err := c.GetSeats(ctx, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, seats, got)
}

// A fill that read the store before an invalidation must not write its
// snapshot back afterwards.
func TestSeatCache_FillAfterInvalidateIsDiscarded(t *testing.T) {
	c, mr := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	gen, err := c.Generation(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, 3))

	stored, err := c.SetSeats(ctx, 3, gen, []domain.Seat{{ID: 7, ShowID: 3}})
	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, mr.Exists("seats:3"))

	_, hit, err := c.GetSeats(ctx, 3)
	require.NoError(t, err)
	assert.False(t, hit)

	current, err := c.Generation(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, gen+1, current)

	stored, err = c.SetSeats(ctx, 3, current, []domain.Seat{{ID: 7, ShowID: 3, Occupied: true, Version: 1}})
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestSeatCache_CorruptEntry(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSeatCache(db, time.Minute)

	mockRedis.ExpectGet("seats:4").SetVal("not-json")

	_, hit, err := c.GetSeats(context.Background(), 4)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSeatCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSeatCache(db, time.Minute)

	mockRedis.ExpectIncr("seats:9:gen").SetVal(4)
	mockRedis.ExpectDel("seats:9").SetVal(1)

	require.NoError(t, c.Invalidate(context.Background(), 9))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSeatCache_InvalidateDropsEntryWhenIncrFails(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewSeatCache(db, time.Minute)

	mockRedis.ExpectIncr("seats:9:gen").SetErr(errors.New("READONLY"))
	mockRedis.ExpectDel("seats:9").SetVal(1)

	assert.Error(t, c.Invalidate(context.Background(), 9))
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
