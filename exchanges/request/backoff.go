package request

import "time"

// Backoff determines how long to wait between request attempts.
type Backoff func(n int) time.Duration

// DefaultBackoff returns a default linear backoff of 100ms per attempt,
// capped at 1s.
func DefaultBackoff() Backoff {
	return LinearBackoff(100*time.Millisecond, time.Second)
}

// LinearBackoff returns a Backoff that increases linearly by base each
// attempt up to max.
func LinearBackoff(base, maxDelay time.Duration) Backoff {
	return func(n int) time.Duration {
		d := base * time.Duration(n)
		if d > maxDelay {
			return maxDelay
		}
		return d
	}
}
