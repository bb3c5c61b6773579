package ratelimiter

import (
	"context"
	"time"
)

// Config defines the token bucket.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`         // burst size
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`      // tokens added per interval
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"` // refill period
}

// Result is the outcome of one rate limit check.
type Result struct {
	Limit     int
	Remaining int       // negative when the request was denied
	ResetAt   time.Time // next refill
}

func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait. Zero when allowed.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(now), 0)
}

// Store persists bucket state. Implementations must apply refill and
// consumption atomically per key. A request for more tokens than the bucket
// holds consumes nothing and reports a negative remainder.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// refill returns the token count and refill timestamp after advancing a
// bucket from last to now. Whole intervals only, so no time drifts.
func refill(tokens int, last, now time.Time, cfg Config) (int, time.Time) {
	if now.Before(last) {
		return tokens, last
	}
	intervals := int64(now.Sub(last) / cfg.RefillInterval)
	if intervals <= 0 {
		return tokens, last
	}
	// Beyond this many intervals the bucket is full anyway.
	capIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	added := min(intervals, capIntervals) * int64(cfg.RefillRate)
	return int(min(int64(tokens)+added, int64(cfg.Capacity))),
		last.Add(time.Duration(intervals) * cfg.RefillInterval)
}
