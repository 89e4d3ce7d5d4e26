package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atamiles/vlures-bench/internal/config"
)

// Policy is the shared retry policy for remote calls: a fixed delay between
// a bounded number of re-attempts. An operation gets MaxRetries+1 attempts
// in total.
type Policy struct {
	MaxRetries int
	Delay      time.Duration
}

// PolicyFromConfig builds a Policy from the retry config section.
func PolicyFromConfig(cfg config.RetryConfig) Policy {
	return Policy{
		MaxRetries: cfg.MaxRetries,
		Delay:      time.Duration(cfg.DelaySeconds) * time.Second,
	}
}

// Do runs fn until it succeeds, the retry budget is exhausted, or the context
// is cancelled. The retryable predicate decides whether an error is worth
// another attempt; a nil predicate retries everything. The delay between
// attempts is fixed and honors context cancellation.
func Do[T any](
	ctx context.Context,
	p Policy,
	logger *slog.Logger,
	label string,
	retryable func(error) bool,
	fn func(context.Context) (T, error),
) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= p.MaxRetries; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying",
				"label", label,
				"attempt", attempt,
				"max_retries", p.MaxRetries,
				"delay", p.Delay,
				"error", lastErr)

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(p.Delay):
			}
		}

		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		if retryable != nil && !retryable(err) {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%s: retries exhausted after %d attempts: %w", label, p.MaxRetries+1, lastErr)
}
