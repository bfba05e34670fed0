package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardindex-io/tcgpricing/internal/httpclient"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// GamesClient implements tcg.GamesClient.
type GamesClient struct {
	httpClient *httpclient.Client
}

// NewGamesClient creates a new games client.
func NewGamesClient(httpClient *httpclient.Client) *GamesClient {
	return &GamesClient{
		httpClient: httpClient,
	}
}

// List implements tcg.GamesClient.List. The games endpoint does not paginate;
// the normalized response therefore carries no pagination block. An API-level
// failure is reported on the response, not as a returned error.
func (c *GamesClient) List(ctx context.Context, params tcg.Params) (*tcg.Response[tcg.GameList], error) {
	resp, err := c.httpClient.Get(ctx, "/games", params.Values())
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	var envelope tcg.Envelope[tcg.GameList]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing games response: %w", err)
	}

	return tcg.Normalize(&envelope), nil
}
