package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Const here define individual functionality sub types for rate limiting
const (
	Unset EndpointLimit = iota
	Auth
	UnAuth
)

var errRateLimiterUnset = errors.New("rate limiter not set for endpoint")

// EndpointLimit defines individual endpoint rate limits that are set when
// New is called.
type EndpointLimit uint16

// RateLimitDefinitions is a map of endpoint limits to rate limiters
type RateLimitDefinitions map[EndpointLimit]*rate.Limiter

// NewRateLimit creates a new RateLimit based of time interval and how many
// actions allowed and breaks it down to an actions-per-second basis. Burst
// rate is kept as one as this is not supported for out-bound requests.
func NewRateLimit(interval time.Duration, actions int) *rate.Limiter {
	if actions <= 0 || interval <= 0 {
		// Returns an un-restricted rate limiter
		return rate.NewLimiter(rate.Inf, 1)
	}
	rps := float64(actions) / interval.Seconds()
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// InitiateRateLimit sleeps for designated end point rate limits
func (r *Requester) InitiateRateLimit(ctx context.Context, e EndpointLimit) error {
	if r.limiter == nil {
		return nil
	}
	l, ok := r.limiter[e]
	if !ok {
		return fmt.Errorf("%w: %d", errRateLimiterUnset, e)
	}
	return l.Wait(ctx)
}

// WithLimiter sets the rate limiter definitions of the Requester
func WithLimiter(def RateLimitDefinitions) RequesterOption {
	return func(r *Requester) {
		r.limiter = def
	}
}

// WithBackoff configures the backoff strategy for a Requester
func WithBackoff(b Backoff) RequesterOption {
	return func(r *Requester) {
		r.backoff = b
	}
}

// WithRetryPolicy configures the retry policy for a Requester
func WithRetryPolicy(p RetryPolicy) RequesterOption {
	return func(r *Requester) {
		r.retryPolicy = p
	}
}

// WithMaxRetries configures how many times a request is retried
func WithMaxRetries(n int) RequesterOption {
	return func(r *Requester) {
		r.maxRetries = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) RequesterOption {
	return func(r *Requester) {
		r.UserAgent = ua
	}
}
