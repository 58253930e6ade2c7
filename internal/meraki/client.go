// Package meraki provides a Dashboard API v1 client covering the
// organization, network and device endpoints used to reconcile device
// addresses.
package meraki

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/merakiaddr/internal/transport"
	"github.com/agentstation/merakiaddr/pkg/constants"
	"github.com/agentstation/merakiaddr/pkg/errors"
	"github.com/agentstation/merakiaddr/pkg/logging"
)

// Client talks to the Dashboard API.
type Client struct {
	transport *transport.Client
	baseURL   string
}

type clientOptions struct {
	baseURL       string
	legacyAuth    bool
	transportOpts []transport.Option
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL points the client at a different API root (e.g. a regional
// dashboard or a test server).
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLegacyAuth sends the key in X-Cisco-Meraki-API-Key instead of a
// Bearer token.
func WithLegacyAuth() Option {
	return func(o *clientOptions) {
		o.legacyAuth = true
	}
}

// WithTransportOptions passes options through to the transport client.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *clientOptions) {
		o.transportOpts = append(o.transportOpts, opts...)
	}
}

// NewClient creates a client for apiKey. An empty key is rejected before
// any request is made.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.NewAuthenticationError("meraki", "api_key",
			constants.EnvAPIKey+" is not set", errors.ErrAPIKeyRequired)
	}

	o := clientOptions{baseURL: constants.DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	var auth transport.Authenticator = &transport.BearerAuth{}
	if o.legacyAuth {
		auth = transport.LegacyAuth()
	}

	return &Client{
		transport: transport.New(auth, apiKey, o.transportOpts...),
		baseURL:   o.baseURL,
	}, nil
}

// BaseURL returns the API root used by the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListOrganizations returns every organization visible to the API key.
func (c *Client) ListOrganizations(ctx context.Context) ([]Organization, error) {
	return getAll[Organization](ctx, c, c.pageURL("/organizations"))
}

// ListOrganizationNetworks returns the networks of an organization.
func (c *Client) ListOrganizationNetworks(ctx context.Context, orgID string) ([]Network, error) {
	return getAll[Network](ctx, c, c.pageURL("/organizations/"+url.PathEscape(orgID)+"/networks"))
}

// ListNetworkDevices returns the devices of a network in API order.
func (c *Client) ListNetworkDevices(ctx context.Context, networkID string) ([]Device, error) {
	var devices []Device
	if err := c.get(ctx, c.baseURL+"/networks/"+url.PathEscape(networkID)+"/devices", &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDevice returns a single device.
func (c *Client) GetDevice(ctx context.Context, serial string) (*Device, error) {
	var device Device
	if err := c.get(ctx, c.baseURL+"/devices/"+url.PathEscape(serial), &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// UpdateDeviceAddress sets the physical address of a device and returns the
// device as stored by the API.
func (c *Client) UpdateDeviceAddress(ctx context.Context, serial, address string) (*Device, error) {
	logging.FromContext(ctx).Debug().
		Str("serial", serial).
		Str("address", address).
		Msg("Updating device address")

	resp, err := c.transport.Put(ctx, c.baseURL+"/devices/"+url.PathEscape(serial), deviceUpdate{Address: &address})
	if err != nil {
		return nil, err
	}

	var device Device
	if err := transport.DecodeResponse(resp, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

func (c *Client) get(ctx context.Context, rawURL string, target any) error {
	logging.FromContext(ctx).Trace().Str("url", rawURL).Msg("GET")

	resp, err := c.transport.Get(ctx, rawURL)
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, target)
}

func (c *Client) pageURL(path string) string {
	return c.baseURL + path + "?perPage=" + strconv.Itoa(constants.PageSize)
}

// getAll follows Link rel=next headers and concatenates every page.
func getAll[T any](ctx context.Context, c *Client, rawURL string) ([]T, error) {
	var all []T
	next := rawURL
	for page := 0; next != ""; page++ {
		if page >= constants.MaxPages {
			return nil, errors.NewParseError("link", next, "pagination did not terminate", nil)
		}

		resp, err := c.transport.Get(ctx, next)
		if err != nil {
			return nil, err
		}
		following := transport.NextLink(resp)

		var items []T
		if err := transport.DecodeResponse(resp, &items); err != nil {
			return nil, err
		}
		all = append(all, items...)
		next = following
	}
	return all, nil
}
