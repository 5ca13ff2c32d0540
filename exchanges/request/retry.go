package request

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	headerRetryAfter = "Retry-After"
)

// RetryPolicy determines whether the request should be retried, implemented
// with a default strategy
type RetryPolicy func(resp *http.Response, err error) (bool, error)

// DefaultRetryPolicy determines whether the request should be retried. DNS
// and network timeouts are retried, other transport errors are returned. Too
// many requests, server side errors and Retry-After responses are retried.
func DefaultRetryPolicy(resp *http.Response, err error) (bool, error) {
	if err != nil {
		var timeoutErr net.Error
		if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
			return true, nil
		}
		return false, err
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return true, nil
	case resp.Header.Get(headerRetryAfter) != "":
		return true, nil
	}
	return false, nil
}

// RetryAfter parses the Retry-After header in the response to determine the
// minimum duration needed to wait before retrying.
func RetryAfter(resp *http.Response, now time.Time) time.Duration {
	if resp == nil {
		return 0
	}

	after := resp.Header.Get(headerRetryAfter)
	if after == "" {
		return 0
	}

	if sec, err := strconv.ParseInt(after, 10, 32); err == nil {
		return time.Duration(sec) * time.Second
	}

	if when, err := time.Parse(time.RFC1123, after); err == nil {
		return when.Sub(now)
	}

	return 0
}
