package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/agentstation/merakiaddr/pkg/constants"
	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// RetryTransport waits out HTTP 429 responses using the Retry-After header
// and resends the request up to MaxRetries times. Every other response,
// including other errors, is returned on the first attempt.
type RetryTransport struct {
	Base       http.RoundTripper
	MaxRetries int

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRetryTransport wraps base (http.DefaultTransport when nil).
func NewRetryTransport(base http.RoundTripper, maxRetries int) *RetryTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RetryTransport{
		Base:       base,
		MaxRetries: maxRetries,
		sleep:      sleepContext,
	}
}

// RoundTrip implements http.RoundTripper.
func (rt *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := drainBody(req)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(req.Context())
		if body != nil {
			attemptReq.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := rt.Base.RoundTrip(attemptReq)
		if err != nil {
			return resp, err
		}
		if resp.StatusCode != http.StatusTooManyRequests || attempt >= rt.MaxRetries {
			return resp, nil
		}

		wait := RetryAfter(resp.Header)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		logging.FromContext(req.Context()).Warn().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("attempt", attempt+1).
			Dur("retry_after", wait).
			Msg("Rate limited by Dashboard API, waiting before retry")

		if err := rt.sleep(req.Context(), wait); err != nil {
			return nil, err
		}
	}
}

// RetryAfter parses a Retry-After header given in seconds or as an HTTP
// date. Missing or unparsable values yield constants.DefaultRetryAfter and
// the result is capped at constants.MaxRetryAfter.
func RetryAfter(h http.Header) time.Duration {
	value := h.Get("Retry-After")
	if value == "" {
		return constants.DefaultRetryAfter
	}

	var wait time.Duration
	if secs, err := strconv.Atoi(value); err == nil {
		wait = time.Duration(secs) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		wait = time.Until(at)
	} else {
		return constants.DefaultRetryAfter
	}

	if wait < 0 {
		wait = 0
	}
	if wait > constants.MaxRetryAfter {
		wait = constants.MaxRetryAfter
	}
	return wait
}

func drainBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "request body", err)
	}
	_ = req.Body.Close()
	return data, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
