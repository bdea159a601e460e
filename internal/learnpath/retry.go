package learnpath

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/learnyst/learnyst/internal/subject"
)

// RetryGenerator is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryGenerator struct {
	inner  Generator
	config RetryConfig
}

// WithRetry wraps a Generator with retry logic.
func WithRetry(g Generator, cfg RetryConfig) Generator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryGenerator{inner: g, config: cfg}
}

func (r *RetryGenerator) Generate(ctx context.Context, input Input) ([]subject.TopicNode, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		nodes, err := r.inner.Generate(ctx, input)
		if err == nil {
			return nodes, nil
		}
		lastErr = err

		if !r.shouldRetry(err, &invalidRetried) {
			return nil, err
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, lastErr
}

// shouldRetry determines if an error is retryable.
func (r *RetryGenerator) shouldRetry(err error, invalidRetried *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// An invalid outline gets one more chance.
	var invalid *ErrInvalidOutline
	if errors.As(err, &invalid) {
		if *invalidRetried {
			return false
		}
		*invalidRetried = true
		return true
	}

	return true
}

// backoff computes the wait duration for the given attempt.
func (r *RetryGenerator) backoff(attempt int) time.Duration {
	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
