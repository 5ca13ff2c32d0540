package request

import (
	"io"
	"net/http"
	"time"
)

// Const vars for rate limiter and retries
const (
	DefaultMaxRetryAttempts = 3
	DefaultTimeout          = time.Second * 15
	drainBodyLimit          = 100000
	userAgent               = "User-Agent"
)

// Requester struct for the request client
type Requester struct {
	HTTPClient  *http.Client
	Name        string
	UserAgent   string
	limiter     RateLimitDefinitions
	backoff     Backoff
	retryPolicy RetryPolicy
	maxRetries  int
	// sleep is swapped out in tests
	sleep func(time.Duration)
}

// Item is a temp item for requests
type Item struct {
	Method        string
	Path          string
	Headers       map[string]string
	Body          io.Reader
	Result        any
	Verbose       bool
	HTTPDebugging bool
	// CheckResponse inspects every response body before the status code is
	// evaluated, allowing exchange error payloads on non 2xx responses to be
	// classified
	CheckResponse func(statusCode int, contents []byte) error
}

// Generate defines a closure for functionality outside of the requester to
// generate a new *request.Item during a retry. This should be used when a
// timestamp or signature must be refreshed per attempt.
type Generate func() (*Item, error)

// RequesterOption is a function option that can be applied to configure a
// Requester when creating it.
type RequesterOption func(*Requester)
