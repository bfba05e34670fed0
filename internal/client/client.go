// Package client implements tcg.Client on top of the HTTP transport.
package client

import (
	"github.com/cardindex-io/tcgpricing/internal/constants"
	"github.com/cardindex-io/tcgpricing/internal/httpclient"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// Client implements the tcg.Client interface.
type Client struct {
	httpClient *httpclient.Client
	baseURL    string
	logger     tcg.Logger

	games tcg.GamesClient
	sets  tcg.SetsClient
	cards tcg.CardsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *tcg.Config) []httpclient.Option {
	var httpOpts []httpclient.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, httpclient.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, httpclient.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, httpclient.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, httpclient.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, httpclient.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new pricing API client. The API key must already be resolved;
// tcgclient.New handles the environment fallback before calling here.
func New(config *tcg.Config) (*Client, error) {
	if config == nil {
		return nil, tcg.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, tcg.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := httpclient.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.games = NewGamesClient(httpClient)
	client.sets = NewSetsClient(httpClient, config.Logger)
	client.cards = NewCardsClient(httpClient, config.Logger)

	return client, nil
}

// Games implements tcg.Client.Games.
func (c *Client) Games() tcg.GamesClient {
	return c.games
}

// Sets implements tcg.Client.Sets.
func (c *Client) Sets() tcg.SetsClient {
	return c.sets
}

// Cards implements tcg.Client.Cards.
func (c *Client) Cards() tcg.CardsClient {
	return c.cards
}
