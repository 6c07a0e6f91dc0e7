package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter keys outlive their one-second window by a second so a slow
// reply never resurrects an expired window.
const windowKeyTTL = 2

// incrWithExpiry bumps the window counter and stamps a TTL on first
// use, atomically, so concurrent probes from several instances agree
// on the count.
var incrWithExpiry = redis.NewScript(`
local hits = redis.call("INCR", KEYS[1])
if hits == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return hits
`)

// RedisLimiter counts key probes in Redis so the per-client budget is
// shared by every server instance behind the same load balancer.
type RedisLimiter struct {
	client *redis.Client
	prefix string
}

// NewRedisLimiter constructs a RedisLimiter. The prefix namespaces the
// counters inside a shared Redis database.
func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, prefix: strings.TrimSpace(prefix)}
}

// Allow counts the request against its one-second window and reports
// whether it fits under limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, now time.Time) (Result, error) {
	if l == nil || l.client == nil || limit <= 0 || key == "" {
		return Result{Allowed: true}, nil
	}

	sec := now.Unix()
	hits, errEval := l.countHit(ctx, l.windowKey(key, sec))
	if errEval != nil {
		return Result{}, errEval
	}

	result := Result{Reset: time.Unix(sec+1, 0).UTC()}
	if hits > int64(limit) {
		return result, nil
	}
	result.Allowed = true
	if remaining := limit - int(hits); remaining > 0 {
		result.Remaining = remaining
	}
	return result, nil
}

// countHit runs the counter script and normalizes the reply, which the
// client may surface as any integer width.
func (l *RedisLimiter) countHit(ctx context.Context, windowKey string) (int64, error) {
	reply, errEval := incrWithExpiry.Run(ctx, l.client, []string{windowKey}, windowKeyTTL).Result()
	if errEval != nil {
		return 0, errEval
	}
	switch hits := reply.(type) {
	case int64:
		return hits, nil
	case int:
		return int64(hits), nil
	case uint64:
		return int64(hits), nil
	default:
		return 0, fmt.Errorf("rate limit redis: unexpected reply %T", reply)
	}
}

func (l *RedisLimiter) windowKey(key string, sec int64) string {
	parts := make([]string, 0, 3)
	if l.prefix != "" {
		parts = append(parts, l.prefix)
	}
	parts = append(parts, key, strconv.FormatInt(sec, 10))
	return strings.Join(parts, ":")
}
