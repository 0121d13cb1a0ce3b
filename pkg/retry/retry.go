package retry

import (
	stderrors "errors"
	"fmt"
	"time"

	errs "namedic/pkg/errors"
)

// Operation is a unit of work that may need retrying.
type Operation func() error

// OperationWithResult is a unit of work that returns a result.
type OperationWithResult[T any] func() (T, error)

// Config holds retry behavior.
type Config struct {
	// MaxAttempts is the total number of attempts including the first.
	// A value of 1 disables retries entirely.
	MaxAttempts int
	// Backoff strategy between attempts
	Backoff BackoffStrategy
	// RetryIf decides whether an error is worth another attempt
	RetryIf func(error) bool
	// OnRetry is called before each retry attempt
	OnRetry func(attempt int, err error, delay time.Duration)
	// Sleep is overridable for tests
	Sleep func(time.Duration)
}

// DefaultConfig returns a retry configuration with retries disabled, which
// is the collector's default: a failed page fails its prefix immediately.
func DefaultConfig() *Config {
	return &Config{
		MaxAttempts: 1,
		Backoff:     &ConstantBackoff{Delay: 2 * time.Second},
		RetryIf:     DefaultRetryIf,
	}
}

// DefaultRetryIf retries transient fetch failures and nothing else.
func DefaultRetryIf(err error) bool {
	if err == nil {
		return false
	}
	var typed *errs.Error
	if stderrors.As(err, &typed) {
		return errs.IsRetryable(typed.Type)
	}
	return false
}

// Do executes op, retrying per the configuration.
func Do(op Operation, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		if cfg.MaxAttempts > 0 && attempt > cfg.MaxAttempts {
			return fmt.Errorf("max retry attempts (%d) exceeded: %w", cfg.MaxAttempts, lastErr)
		}

		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return err
		}
		if cfg.MaxAttempts > 0 && attempt >= cfg.MaxAttempts {
			return err
		}

		var delay time.Duration
		if cfg.Backoff != nil {
			delay = cfg.Backoff.NextDelay(attempt)
		}
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, delay)
		}
		if delay > 0 {
			sleep(delay)
		}
	}
}

// DoWithResult executes an operation returning a result, retrying per the
// configuration.
func DoWithResult[T any](op OperationWithResult[T], cfg *Config) (T, error) {
	var result T
	err := Do(func() error {
		var opErr error
		result, opErr = op()
		return opErr
	}, cfg)
	return result, err
}
