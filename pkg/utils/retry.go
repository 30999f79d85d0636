package utils

import (
	"context"
	"errors"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// Retryable reports whether an error is worth another attempt. Nil means every error is.
	Retryable func(err error) bool
}

// Retry calls fn until it succeeds, the attempts run out, ctx is done, or fn returns
// an error that is not retryable. Errors matching one of stop are returned immediately.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error, stop ...error) error {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Multiplier <= 1 {
		cfg.Multiplier = 2.0
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = time.Millisecond * 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}
		if attempt == cfg.MaxAttempts || !shouldRetry(cfg, err, stop) {
			return err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

func shouldRetry(cfg RetryConfig, err error, stop []error) bool {
	for _, target := range stop {
		if errors.Is(err, target) {
			return false
		}
	}
	if cfg.Retryable != nil {
		return cfg.Retryable(err)
	}
	return true
}
