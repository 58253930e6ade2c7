// Package constants provides shared constants used throughout merakiaddr.
// This includes timeouts, limits, file permissions and the Dashboard API
// defaults that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Dashboard API
	DefaultHTTPTimeout = 60 * time.Second

	// DefaultRetryAfter is used when a 429 response carries no Retry-After header
	DefaultRetryAfter = 1 * time.Second

	// MaxRetryAfter caps how long a single rate-limit wait may last
	MaxRetryAfter = 60 * time.Second

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxRetries is the maximum number of rate-limit retries per request
	MaxRetries = 2

	// PageSize is the perPage value sent to paginated list endpoints
	PageSize = 1000

	// MaxPages guards against Link headers that never terminate
	MaxPages = 1000
)

// Dashboard API defaults
const (
	// DefaultBaseURL is the Meraki Dashboard API v1 endpoint
	DefaultBaseURL = "https://api.meraki.com/api/v1"

	// UserAgent identifies this tool to the Dashboard API
	UserAgent = "merakiaddr"

	// LegacyAPIKeyHeader is the pre-Bearer authentication header
	LegacyAPIKeyHeader = "X-Cisco-Meraki-API-Key"
)

// Configuration names
const (
	// AppName is used for the config file name and command name
	AppName = "merakiaddr"

	// EnvAPIKey is the environment variable holding the Dashboard API key
	EnvAPIKey = "MERAKI_DASHBOARD_API_KEY"
)
