package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/agentstation/merakiaddr/pkg/constants"
	"github.com/agentstation/merakiaddr/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	userAgent string
}

// options collects Option values before the client is assembled.
type options struct {
	base       *http.Client
	timeout    time.Duration
	maxRetries int
	userAgent  string
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient sets the underlying HTTP client. The rate-limit
// transport is layered on top of its RoundTripper.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.base = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithMaxRetries sets how many times a 429 response is retried.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxRetries = n
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator, apiKey string, opts ...Option) *Client {
	o := options{
		timeout:    DefaultHTTPTimeout,
		maxRetries: constants.MaxRetries,
		userAgent:  constants.UserAgent,
	}
	for _, opt := range opts {
		opt(&o)
	}

	hc := &http.Client{}
	if o.base != nil {
		clone := *o.base
		hc = &clone
	}
	hc.Timeout = o.timeout

	if auth == nil {
		auth = &NoAuth{}
	}
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = NewRetryTransport(&authTransport{base: base, auth: auth, apiKey: apiKey}, o.maxRetries)

	return &Client{
		http:      hc,
		userAgent: o.userAgent,
	}
}

// Do performs an HTTP request. Authentication is applied by the client's
// transport on every hop, including redirects.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Put performs a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, url string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.WrapParse("json", "request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "PUT "+url, err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}
	return c.Do(req)
}
