package learnpath

import (
	"time"

	"go.uber.org/zap"
)

// Config holds learning path generation settings.
type Config struct {
	// Delay is the simulated backend latency of the static generator.
	Delay time.Duration

	// Timeout bounds a single generation request, retries included.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the stock generation settings.
func DefaultConfig() Config {
	return Config{
		Delay:   DefaultDelay,
		Timeout: 30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// New builds the placeholder generator wrapped with middleware:
// caller → timeout → retry → validation → logging → static.
func New(cfg Config, logger *zap.Logger) Generator {
	return Wrap(NewStatic(cfg.Delay), cfg, logger)
}

// Wrap applies the standard middleware stack to any Generator.
func Wrap(base Generator, cfg Config, logger *zap.Logger) Generator {
	logged := WithLogging(base, logger)
	validated := WithValidation(logged)
	retried := WithRetry(validated, cfg.Retry)
	return WithTimeout(retried, cfg.Timeout)
}
