package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript trims the window, then admits the request when both windows have room.
// Result: 1 = allowed, -1 = per second limit, -2 = per minute limit
var slidingWindowScript = redis.NewScript(`
	local now = tonumber(ARGV[3])
	redis.call("ZREMRANGEBYSCORE", KEYS[1], "-inf", now - 1000)
	redis.call("ZREMRANGEBYSCORE", KEYS[2], "-inf", now - 60000)

	local tps = tonumber(ARGV[1])
	local tpm = tonumber(ARGV[2])
	if tps > 0 and redis.call("ZCARD", KEYS[1]) >= tps then
		return -1
	end
	if tpm > 0 and redis.call("ZCARD", KEYS[2]) >= tpm then
		return -2
	end

	redis.call("ZADD", KEYS[1], now, ARGV[4])
	redis.call("ZADD", KEYS[2], now, ARGV[4])
	redis.call("PEXPIRE", KEYS[1], 1000)
	redis.call("PEXPIRE", KEYS[2], 60000)
	return 1
`)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxTransactionsPerSecond is the maximum number of requests per second, zero disables it
	MaxTransactionsPerSecond int
	// MaxTransactionsPerMinute is the maximum number of requests per minute, zero disables it
	MaxTransactionsPerMinute int
	// Timeout bounds each Redis round trip
	Timeout time.Duration
}

// Validate validates the rate limiter options
func (o *RateLimiterOptions) Validate() error {
	if o.MaxTransactionsPerSecond < 0 || o.MaxTransactionsPerMinute < 0 {
		return fmt.Errorf("rate limits must be non-negative")
	}
	if o.MaxTransactionsPerSecond == 0 && o.MaxTransactionsPerMinute == 0 {
		return fmt.Errorf("at least one rate limit must be set")
	}
	return nil
}

// RateLimiter is a sliding window limiter shared by every replica through Redis.
// It satisfies echo's middleware.RateLimiterStore.
type RateLimiter struct {
	client *Client
	name   string
	opts   RateLimiterOptions
	now    func() time.Time
}

// NewRateLimiter creates a named limiter
func NewRateLimiter(client *Client, name string, opts RateLimiterOptions) (*RateLimiter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second
	}
	return &RateLimiter{client: client, name: name, opts: opts, now: time.Now}, nil
}

// Allow records a request for identifier and reports whether it fits the limits
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rl.opts.Timeout)
	defer cancel()
	return rl.AllowContext(ctx, identifier)
}

// AllowContext is Allow bounded by ctx
func (rl *RateLimiter) AllowContext(ctx context.Context, identifier string) (bool, error) {
	keys := []string{
		rl.client.Key("ratelimit", rl.name, identifier, "tps"),
		rl.client.Key("ratelimit", rl.name, identifier, "tpm"),
	}
	result, err := slidingWindowScript.Run(ctx, rl.client.GetClient(), keys,
		rl.opts.MaxTransactionsPerSecond,
		rl.opts.MaxTransactionsPerMinute,
		rl.now().UnixMilli(),
		uuid.NewString(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rate limiter %s: %w", rl.name, err)
	}
	return result == 1, nil
}
