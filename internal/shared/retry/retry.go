// Package retry provides a bounded, fixed-delay retry helper for
// transient collaborator calls. Domain rule violations must not be
// retried; callers decide which errors qualify.
package retry

import (
	"context"
	"time"
)

// Config bounds the retry loop.
type Config struct {
	Attempts int
	Delay    time.Duration
}

// DefaultConfig retries once after a short fixed delay.
func DefaultConfig() Config {
	return Config{Attempts: 2, Delay: 200 * time.Millisecond}
}

// Do executes fn up to cfg.Attempts times, sleeping cfg.Delay between
// attempts. Retrying stops on success or context cancellation.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(cfg.Delay):
			}
		}
	}

	return zero, lastErr
}
