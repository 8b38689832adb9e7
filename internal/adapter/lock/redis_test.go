package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/srgjo27/movie_booking/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedToken() (string, error) { return "token-1", nil }

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := NewRedisLocker(db, 10*time.Second, WithTokenGenerator(fixedToken))

	mockRedis.ExpectSetNX("lock:show:1", "token-1", 10*time.Second).SetVal(true)
	mockRedis.ExpectEval(releaseScript, []string{"lock:show:1"}, "token-1").SetVal(int64(1))

	unlock, err := locker.Lock(context.Background(), 1)
	require.NoError(t, err)
	unlock()

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisLocker_RetriesUntilFree(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := NewRedisLocker(db, time.Second,
		WithTokenGenerator(fixedToken),
		WithRetryInterval(time.Millisecond))

	mockRedis.ExpectSetNX("lock:show:3", "token-1", time.Second).SetVal(false)
	mockRedis.ExpectSetNX("lock:show:3", "token-1", time.Second).SetVal(true)

	_, err := locker.Lock(context.Background(), 3)
	require.NoError(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisLocker_BusyWhenContextExpires(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := NewRedisLocker(db, time.Second,
		WithTokenGenerator(fixedToken),
		WithRetryInterval(50*time.Millisecond))

	mockRedis.ExpectSetNX("lock:show:1", "token-1", time.Second).SetVal(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := locker.Lock(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrBusy)
}

func TestRedisLocker_RedisError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	locker := NewRedisLocker(db, time.Second, WithTokenGenerator(fixedToken))

	mockRedis.ExpectSetNX("lock:show:1", "token-1", time.Second).SetErr(errors.New("connection refused"))

	_, err := locker.Lock(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBusy)
	assert.Contains(t, err.Error(), "lock:show:1")
}
