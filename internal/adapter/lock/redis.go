package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

// releaseScript deletes the lock only when it still carries our token, so an
// expired lease taken over by another instance is left alone.
const releaseScript = `
if redis.call('get', KEYS[1]) == ARGV[1] then
    return redis.call('del', KEYS[1])
end
return 0
`

// RedisLocker is a lease-based lock shared by every instance talking to the
// same Redis. The lease bounds how long a crashed holder can block a show.
type RedisLocker struct {
	client   *redis.Client
	ttl      time.Duration
	retry    time.Duration
	newToken func() (string, error)
}

type RedisOption func(*RedisLocker)

func WithRetryInterval(d time.Duration) RedisOption {
	return func(l *RedisLocker) { l.retry = d }
}

func WithTokenGenerator(fn func() (string, error)) RedisOption {
	return func(l *RedisLocker) { l.newToken = fn }
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, opts ...RedisOption) *RedisLocker {
	l := &RedisLocker{
		client:   client,
		ttl:      ttl,
		retry:    25 * time.Millisecond,
		newToken: randomToken,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func LockKey(showID int64) string {
	return fmt.Sprintf("lock:show:%d", showID)
}

func (l *RedisLocker) Lock(ctx context.Context, showID int64) (func(), error) {
	key := LockKey(showID)

	token, err := l.newToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lock token: %w", err)
	}

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: show %d: %v", domain.ErrBusy, showID, ctx.Err())
			}
			return nil, fmt.Errorf("failed to acquire %s: %w", key, err)
		}

		if ok {
			return l.unlockFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: show %d: %v", domain.ErrBusy, showID, ctx.Err())
		case <-time.After(l.retry):
		}
	}
}

func (l *RedisLocker) unlockFunc(key, token string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		released, err := l.client.Eval(ctx, releaseScript, []string{key}, token).Int64()
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to release show lock")
			return
		}
		if released == 0 {
			log.Warn().Str("key", key).Msg("show lock lease expired before release")
		}
	}
}

func randomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
