package redis

import (
	"context"
	"time"
)

// RetryOperation runs operation up to maxRetries+1 times, doubling the delay between attempts
func RetryOperation(ctx context.Context, maxRetries int, delay time.Duration, operation func() error) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
