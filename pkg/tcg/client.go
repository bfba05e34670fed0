package tcg

import (
	"context"
	"time"
)

// GamesClient provides access to the games endpoint.
type GamesClient interface {
	// List returns every supported game. The endpoint does not paginate, so
	// the response carries no pagination block.
	List(ctx context.Context, params Params) (*Response[GameList], error)
}

// SetsClient provides access to the sets endpoint.
type SetsClient interface {
	// List fetches one page of sets.
	List(ctx context.Context, params Params) (*Response[SetList], error)
	// ListAll fetches every page and returns the flattened sets.
	ListAll(ctx context.Context, params Params) ([]Set, error)
	// Iterate returns a lazy iterator over all sets matching params.
	Iterate(ctx context.Context, params Params, pageSize int) *PageIterator[Set]
}

// CardsClient provides access to the cards endpoints.
type CardsClient interface {
	// Search fetches one page of cards matching the search parameters.
	Search(ctx context.Context, params Params) (*Response[CardList], error)
	// SearchAll fetches every page and returns the flattened cards.
	SearchAll(ctx context.Context, params Params) ([]Card, error)
	// Iterate returns a lazy iterator over all cards matching params.
	Iterate(ctx context.Context, params Params, pageSize int) *PageIterator[Card]
	// Batch resolves up to 100 cards in one POST. The response carries no
	// pagination block.
	Batch(ctx context.Context, lookups []BatchLookup) (*Response[CardList], error)
}

// Client is the top-level interface grouping the resource clients.
type Client interface {
	Games() GamesClient
	Sets() SetsClient
	Cards() CardsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tcg.Client.
//
// The API key is the single credential and it is resolved once, at
// construction time: an explicit APIKey takes priority over the TCG_API_KEY
// environment variable read by tcgclient.New. Construction fails before any
// network call when neither source yields a key. Deeper components never read
// ambient process state.
type Config struct {
	// APIKey authenticates every request via the X-API-Key header.
	APIKey string

	// BaseURL overrides the production API endpoint. tcgclient.New normalizes
	// this value by trimming a trailing slash and adding "https://" if no
	// scheme is present.
	BaseURL string

	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// HTTPTimeout is the default timeout applied by the underlying transport.
	// Per-request deadlines should be controlled via context.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport retries for transient
	// failures. Zero keeps the core contract of exactly one network call per
	// invocation.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}
