// Package resilience guards calls to flaky model backends.
package resilience

import "time"

const (
	DefaultThreshold        = 5
	DefaultResetTimeout     = 30 * time.Second
	DefaultHalfOpenRequests = 1

	DefaultMaxRetries   = 3
	DefaultBaseDelay    = 1 * time.Second
	DefaultMaxDelay     = 30 * time.Second
	DefaultJitterFactor = 0.2
)

// Config holds circuit breaker settings.
type Config struct {
	Name             string
	Threshold        int           // consecutive failures before opening
	ResetTimeout     time.Duration // wait before a half-open attempt
	HalfOpenRequests int           // successful trial calls needed to close again
}

// DefaultConfig returns the breaker settings used for the summarization engine.
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		Threshold:        DefaultThreshold,
		ResetTimeout:     DefaultResetTimeout,
		HalfOpenRequests: DefaultHalfOpenRequests,
	}
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = DefaultResetTimeout
	}
	if c.HalfOpenRequests <= 0 {
		c.HalfOpenRequests = DefaultHalfOpenRequests
	}
	return c
}
