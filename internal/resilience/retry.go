package resilience

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
)

// RetryConfig holds retry settings.
type RetryConfig struct {
	MaxRetries   int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64
	IsRetryable  func(error) bool
	OnRetry      func(ctx context.Context, attempt int, delay time.Duration, err error)
}

// DefaultRetryConfig returns settings tuned for hosted LLM APIs.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   DefaultMaxRetries,
		BaseDelay:    DefaultBaseDelay,
		MaxDelay:     DefaultMaxDelay,
		JitterFactor: DefaultJitterFactor,
		IsRetryable:  IsTransient,
	}
}

var transientMarkers = []string{
	"500", "502", "503", "504",
	"UNAVAILABLE", "INTERNAL", "DEADLINE_EXCEEDED",
	"connection reset", "timeout",
}

// IsTransient reports whether err looks like a temporary backend failure.
// Context errors and breaker rejections are never retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	msg := err.Error()
	for _, m := range transientMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// Retry executes fn with jittered exponential backoff, at most
// cfg.MaxRetries times after the first call. It returns the last error
// if every attempt fails.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	cfg = cfg.withDefaults()
	if err := ctx.Err(); err != nil {
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(newBackOff(cfg), uint64(cfg.MaxRetries)), ctx)

	attempt := 0
	operation := func() error {
		err := fn()
		if err != nil && !cfg.IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		attempt++
		if cfg.OnRetry != nil {
			cfg.OnRetry(ctx, attempt, delay, err)
		}
	}

	return backoff.RetryNotify(operation, policy, notify)
}

func newBackOff(cfg RetryConfig) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.BaseDelay
	b.MaxInterval = cfg.MaxDelay
	b.RandomizationFactor = cfg.JitterFactor
	b.Multiplier = 2
	// attempts are bounded by MaxRetries, not by wall time
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.JitterFactor <= 0 {
		c.JitterFactor = DefaultJitterFactor
	}
	if c.IsRetryable == nil {
		c.IsRetryable = IsTransient
	}
	return c
}
