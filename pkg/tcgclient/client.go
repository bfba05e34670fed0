// Package tcgclient provides the primary entry point for constructing a
// pricing API client that implements the tcg.Client interface.
package tcgclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/cardindex-io/tcgpricing/internal/client"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// EnvAPIKey is the environment variable consulted when Config.APIKey is
// empty. Explicit configuration always wins over the environment.
const EnvAPIKey = "TCG_API_KEY"

// New creates a new pricing API client.
//
// The API key is resolved eagerly: Config.APIKey first, then the TCG_API_KEY
// environment variable. When neither yields a key, New fails with
// tcg.ErrAPIKeyRequired before any network call is attempted. The caller's
// Config is not mutated.
func New(config *tcg.Config) (tcg.Client, error) {
	if config == nil {
		return nil, tcg.ErrConfigRequired
	}

	resolved := *config

	if resolved.APIKey == "" {
		resolved.APIKey = os.Getenv(EnvAPIKey)
	}

	if resolved.APIKey == "" {
		return nil, fmt.Errorf("%w: set Config.APIKey or the %s environment variable", tcg.ErrAPIKeyRequired, EnvAPIKey)
	}

	if resolved.BaseURL != "" {
		resolved.BaseURL = normalizeBaseURL(resolved.BaseURL)
	}

	apiClient, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKey creates a client from an API key with default configuration.
func NewWithKey(apiKey string) (tcg.Client, error) {
	return New(&tcg.Config{APIKey: apiKey})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
