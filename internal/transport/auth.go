package transport

import (
	"net/http"

	"github.com/agentstation/merakiaddr/pkg/constants"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, apiKey string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {}

// BearerAuth implements Bearer token authentication, the Dashboard v1 default.
type BearerAuth struct{}

// Apply implements the Authenticator interface for BearerAuth.
func (a *BearerAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set("Authorization", "Bearer "+apiKey)
}

// HeaderAuth implements custom header authentication.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, apiKey string) {
	req.Header.Set(a.Header, apiKey)
}

// LegacyAuth returns the X-Cisco-Meraki-API-Key header authenticator.
func LegacyAuth() Authenticator {
	return &HeaderAuth{Header: constants.LegacyAPIKeyHeader}
}

// authTransport applies the Authenticator to every request it sends,
// including redirect hops to Dashboard shard hosts, which http.Client
// would otherwise send without credentials.
type authTransport struct {
	base   http.RoundTripper
	auth   Authenticator
	apiKey string
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.apiKey == "" {
		return t.base.RoundTrip(req)
	}
	authed := req.Clone(req.Context())
	t.auth.Apply(authed, t.apiKey)
	return t.base.RoundTrip(authed)
}
