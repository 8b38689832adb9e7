package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

// storeIfCurrentScript writes the seat map only while the generation read
// before the fill is still the current one.
const storeIfCurrentScript = `
if tonumber(redis.call("GET", KEYS[2]) or "0") ~= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`

// SeatKey is the Redis key holding the seat map of a show.
func SeatKey(showID int64) string {
	return fmt.Sprintf("seats:%d", showID)
}

// GenerationKey counts invalidations of a show's seat map.
func GenerationKey(showID int64) string {
	return fmt.Sprintf("seats:%d:gen", showID)
}

type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatCache(client *redis.Client, ttl time.Duration) *SeatCache {
	return &SeatCache{client: client, ttl: ttl}
}

func (c *SeatCache) GetSeats(ctx context.Context, showID int64) ([]domain.Seat, bool, error) {
	raw, err := c.client.Get(ctx, SeatKey(showID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var seats []domain.Seat
	if err := json.Unmarshal(raw, &seats); err != nil {
		return nil, false, fmt.Errorf("corrupt seat cache entry for show %d: %w", showID, err)
	}

	return seats, true, nil
}

func (c *SeatCache) Generation(ctx context.Context, showID int64) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey(showID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// SetSeats stores seats read after Generation returned gen. It reports false
// when an invalidation happened in between and nothing was written.
func (c *SeatCache) SetSeats(ctx context.Context, showID, gen int64, seats []domain.Seat) (bool, error) {
	payload, err := json.Marshal(seats)
	if err != nil {
		return false, err
	}

	keys := []string{SeatKey(showID), GenerationKey(showID)}
	stored, err := c.client.Eval(ctx, storeIfCurrentScript, keys, gen, payload, c.ttl.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}

	return stored == 1, nil
}

// Invalidate bumps the generation before dropping the entry, so a fill that
// read the store before the change can no longer write it back.
func (c *SeatCache) Invalidate(ctx context.Context, showID int64) error {
	incrErr := c.client.Incr(ctx, GenerationKey(showID)).Err()
	if err := c.client.Del(ctx, SeatKey(showID)).Err(); err != nil {
		return errors.Join(incrErr, err)
	}
	return incrErr
}

// NopSeatCache always misses. It is used when no Redis is configured.
type NopSeatCache struct{}

func (NopSeatCache) GetSeats(context.Context, int64) ([]domain.Seat, bool, error) {
	return nil, false, nil
}

func (NopSeatCache) Generation(context.Context, int64) (int64, error) { return 0, nil }

func (NopSeatCache) SetSeats(context.Context, int64, int64, []domain.Seat) (bool, error) {
	return false, nil
}

func (NopSeatCache) Invalidate(context.Context, int64) error { return nil }
