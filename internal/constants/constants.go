package constants

import "time"

// API endpoint defaults.
const (
	// DefaultBaseURL is the production pricing API endpoint.
	DefaultBaseURL = "https://api.cardindex.io/v1"

	// APIKeyHeader is the header carrying the API key on every request.
	APIKeyHeader = "X-API-Key"

	// DefaultUserAgent identifies this SDK to the API.
	DefaultUserAgent = "tcgpricing-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless a caller opts in through the client
// configuration; the transport itself never retries on its own.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination defaults.
const (
	// MaxPageSize is the largest page the API accepts.
	MaxPageSize = 200
)
