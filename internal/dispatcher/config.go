package dispatcher

import "time"

// DefaultMaxRepeatCount bounds the repeat count when no other limit is set.
const DefaultMaxRepeatCount = 10000

// Config controls how the dispatcher runs actions.
type Config struct {
	// EnableMetrics keeps per-action counters and timings.
	EnableMetrics bool

	// RecoverFromPanic turns a handler panic into an error result.
	RecoverFromPanic bool

	// MaxRepeatCount rejects actions with a larger count. Zero means no limit.
	MaxRepeatCount int

	// SlowThreshold logs dispatches that take longer at warn level.
	// Zero disables the report.
	SlowThreshold time.Duration
}

// DefaultConfig recovers from panics and caps counts at
// DefaultMaxRepeatCount.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		MaxRepeatCount:   DefaultMaxRepeatCount,
	}
}

// WithMetrics returns c with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithMaxRepeatCount returns c with the count limit set to n.
func (c Config) WithMaxRepeatCount(n int) Config {
	c.MaxRepeatCount = n
	return c
}

// WithSlowThreshold returns c reporting dispatches slower than d.
func (c Config) WithSlowThreshold(d time.Duration) Config {
	c.SlowThreshold = d
	return c
}

// exceedsCount reports whether count is over the configured limit.
func (c Config) exceedsCount(count int) bool {
	return c.MaxRepeatCount > 0 && count > c.MaxRepeatCount
}

// slow reports whether elapsed is over the configured threshold.
func (c Config) slow(elapsed time.Duration) bool {
	return c.SlowThreshold > 0 && elapsed > c.SlowThreshold
}
