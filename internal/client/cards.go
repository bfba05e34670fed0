package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardindex-io/tcgpricing/internal/httpclient"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// CardsClient implements tcg.CardsClient.
type CardsClient struct {
	httpClient *httpclient.Client
	logger     tcg.Logger
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *httpclient.Client, logger tcg.Logger) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Search implements tcg.CardsClient.Search. The search text parameter is
// serialized under its wire key "q" by the parameter serializer.
func (c *CardsClient) Search(ctx context.Context, params tcg.Params) (*tcg.Response[tcg.CardList], error) {
	resp, err := c.httpClient.Get(ctx, "/cards", params.Values())
	if err != nil {
		return nil, fmt.Errorf("searching cards: %w", err)
	}

	var envelope tcg.Envelope[tcg.CardList]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing cards response: %w", err)
	}

	return tcg.Normalize(&envelope), nil
}

// SearchAll implements tcg.CardsClient.SearchAll. A limit in params sets the
// page size used while draining.
func (c *CardsClient) SearchAll(ctx context.Context, params tcg.Params) ([]tcg.Card, error) {
	return tcg.FetchAllPages(ctx, c.pageFetcher(params), &tcg.PaginationOptions{
		PageSize: params.Limit(),
		Logger:   c.logger,
	})
}

// Iterate implements tcg.CardsClient.Iterate.
func (c *CardsClient) Iterate(ctx context.Context, params tcg.Params, pageSize int) *tcg.PageIterator[tcg.Card] {
	return tcg.NewPageIterator(ctx, c.pageFetcher(params), pageSize).WithLogger(c.logger)
}

// Batch implements tcg.CardsClient.Batch. The lookups are posted as a JSON
// array; the reply carries no pagination block.
func (c *CardsClient) Batch(ctx context.Context, lookups []tcg.BatchLookup) (*tcg.Response[tcg.CardList], error) {
	resp, err := c.httpClient.Post(ctx, "/cards", lookups)
	if err != nil {
		return nil, fmt.Errorf("batch card lookup: %w", err)
	}

	var envelope tcg.Envelope[tcg.CardList]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing batch response: %w", err)
	}

	return tcg.Normalize(&envelope), nil
}

// pageFetcher adapts Search to the pagination driver's single-page contract.
func (c *CardsClient) pageFetcher(params tcg.Params) tcg.PageFetcher[tcg.Card] {
	return func(ctx context.Context, limit, offset int) (*tcg.Response[[]tcg.Card], error) {
		page := params.Clone().WithLimit(limit).WithOffset(offset)

		return c.Search(ctx, page)
	}
}
