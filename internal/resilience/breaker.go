package resilience

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
)

// ErrOpen is returned while the breaker is failing fast.
var ErrOpen = gobreaker.ErrOpenState

// Breaker wraps a gobreaker circuit breaker with typed results.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a breaker that opens after cfg.Threshold consecutive
// failures. onChange, if set, sees every state transition.
func NewBreaker(cfg Config, onChange func(from, to gobreaker.State)) *Breaker {
	cfg = cfg.withDefaults()
	threshold := uint32(cfg.Threshold)

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.HalfOpenRequests),
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// a caller giving up says nothing about the backend
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if onChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			onChange(from, to)
		}
	}

	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// State returns the current state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// ExecuteWithResult runs fn under breaker protection.
func ExecuteWithResult[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}
