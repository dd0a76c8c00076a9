package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts requests in fixed windows shared by all API instances.
type Limiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewLimiter creates a Limiter on client.
func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{client: client, prefix: "ratelimit:", now: time.Now}
}

// Allow counts one hit for key in the current window. When the count exceeds
// limit it returns false and the time left until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	now := l.now()
	slot := now.UnixNano() / int64(window)
	k := l.prefix + key + ":" + strconv.FormatInt(slot, 10)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.Expire(ctx, k, window)
		return nil
	})
	if err != nil {
		return false, 0, fmt.Errorf("count request: %w", err)
	}

	if incr.Val() <= int64(limit) {
		return true, 0, nil
	}
	reset := time.Unix(0, (slot+1)*int64(window))
	return false, reset.Sub(now), nil
}
