package database

import (
	"context"
	"math/rand/v2"
	"time"

	coreport "github.com/amirhossein-jamali/transfer-processor/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryConfigFrom builds the retry settings used when connecting
func RetryConfigFrom(config *Config) RetryConfig {
	retry := DefaultRetryConfig()
	retry.MaxAttempts = config.RetryAttempts
	if config.RetryDelay > 0 {
		retry.RetryInterval = config.RetryDelay
		retry.MaxInterval = 4 * config.RetryDelay
	}
	return retry
}

// RetryOnTransientError runs operation up to MaxAttempts times, retrying only
// while it fails with a transient or connection error.
// It is used to establish the database connection, never around a unit of work.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func(ctx context.Context) error,
	classifier *ErrorClassifier,
	logger coreport.Logger,
) error {
	attempts := config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		err = operation(ctx)
		if err == nil {
			return nil
		}

		if !classifier.IsTransientError(err) && !classifier.IsConnectionError(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":      attempt + 1,
			"max_attempts": attempts,
			"error":        err.Error(),
			"retry_after":  backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// calculateBackoffWithJitter computes an exponential backoff capped at MaxInterval, plus jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))
	if config.MaxInterval > 0 && backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}
	return backoff
}
