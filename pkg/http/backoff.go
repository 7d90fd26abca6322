package http

import (
	"context"
	"net/http"
	"time"
)

// BackoffConfig controls how failed requests are retried.
// A request is retried on transport errors, 429 and 5xx responses unless RetryOn says otherwise.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	RetryOn         func(status int, err error) bool
}

// DefaultBackoffConfig returns three retries starting at 200ms
func DefaultBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

func (b *BackoffConfig) shouldRetry(status int, err error) bool {
	if b.RetryOn != nil {
		return b.RetryOn(status, err)
	}
	if err != nil && status == 0 {
		return true
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// interval returns the wait before retry number attempt (starting at 1)
func (b *BackoffConfig) interval(attempt int) time.Duration {
	wait := b.InitialInterval
	multiplier := b.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	for i := 1; i < attempt; i++ {
		wait = time.Duration(float64(wait) * multiplier)
		if b.MaxInterval > 0 && wait >= b.MaxInterval {
			return b.MaxInterval
		}
	}
	return wait
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
