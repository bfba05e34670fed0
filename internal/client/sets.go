package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cardindex-io/tcgpricing/internal/httpclient"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// SetsClient implements tcg.SetsClient.
type SetsClient struct {
	httpClient *httpclient.Client
	logger     tcg.Logger
}

// NewSetsClient creates a new sets client.
func NewSetsClient(httpClient *httpclient.Client, logger tcg.Logger) *SetsClient {
	return &SetsClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// List implements tcg.SetsClient.List.
func (c *SetsClient) List(ctx context.Context, params tcg.Params) (*tcg.Response[tcg.SetList], error) {
	resp, err := c.httpClient.Get(ctx, "/sets", params.Values())
	if err != nil {
		return nil, fmt.Errorf("listing sets: %w", err)
	}

	var envelope tcg.Envelope[tcg.SetList]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing sets response: %w", err)
	}

	return tcg.Normalize(&envelope), nil
}

// ListAll implements tcg.SetsClient.ListAll. A limit in params sets the page
// size used while draining.
func (c *SetsClient) ListAll(ctx context.Context, params tcg.Params) ([]tcg.Set, error) {
	return tcg.FetchAllPages(ctx, c.pageFetcher(params), &tcg.PaginationOptions{
		PageSize: params.Limit(),
		Logger:   c.logger,
	})
}

// Iterate implements tcg.SetsClient.Iterate.
func (c *SetsClient) Iterate(ctx context.Context, params tcg.Params, pageSize int) *tcg.PageIterator[tcg.Set] {
	return tcg.NewPageIterator(ctx, c.pageFetcher(params), pageSize).WithLogger(c.logger)
}

// pageFetcher adapts List to the pagination driver's single-page contract.
// The base parameters are cloned per page so the caller's Params are never
// mutated.
func (c *SetsClient) pageFetcher(params tcg.Params) tcg.PageFetcher[tcg.Set] {
	return func(ctx context.Context, limit, offset int) (*tcg.Response[[]tcg.Set], error) {
		page := params.Clone().WithLimit(limit).WithOffset(offset)

		return c.List(ctx, page)
	}
}
