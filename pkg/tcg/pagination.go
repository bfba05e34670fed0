package tcg

import (
	"context"
	"errors"
	"fmt"
)

// PageFetcher fetches one page of a paginated collection with an explicit
// limit/offset window. Resource clients provide implementations that close
// over their base parameters.
type PageFetcher[T any] func(ctx context.Context, limit, offset int) (*Response[[]T], error)

// DefaultPageSize is used when an iterator is created with a non-positive
// page size.
const DefaultPageSize = 20

// PaginationOptions configures FetchAllPages and StreamPages.
type PaginationOptions struct {
	// PageSize is the number of items requested per page.
	PageSize int

	// MaxPages caps the number of page fetches. Zero means unbounded: the
	// driver then trusts the server's hasMore flag entirely, and a server
	// that reports hasMore forever would iterate forever. Set MaxPages when
	// that risk is unacceptable.
	MaxPages int

	// Logger receives a warning when the server returns an empty page while
	// still reporting more results.
	Logger Logger
}

// DefaultPaginationOptions returns the default pagination configuration.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: DefaultPageSize,
	}
}

// PageIterator lazily walks a paginated collection item by item. It is a
// pull-based iterator: a page is fetched only when the consumer asks for an
// element the current buffer cannot satisfy, so abandoning iteration stops
// all further requests. At most one page is buffered.
//
// The cursor is private to the iterator and must not be shared across
// concurrent consumers; create a fresh iterator per iteration.
type PageIterator[T any] struct {
	ctx      context.Context
	fetch    PageFetcher[T]
	pageSize int
	logger   Logger

	offset  int
	buffer  []T
	pos     int
	hasMore bool
	fetched bool
	err     error
}

// NewPageIterator creates an iterator over the collection served by fetch.
// A non-positive pageSize falls back to DefaultPageSize.
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], pageSize int) *PageIterator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &PageIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		pageSize: pageSize,
		logger:   noopLogger{},
	}
}

// WithLogger sets the logger used for anomaly reporting and returns the
// iterator for chaining.
func (it *PageIterator[T]) WithLogger(logger Logger) *PageIterator[T] {
	if logger != nil {
		it.logger = logger
	}

	return it
}

// HasNext reports whether another item may be available. It never issues a
// network request: before the first fetch it optimistically returns true, and
// afterwards it reflects the buffered items and the server's hasMore flag.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}

	if it.pos < len(it.buffer) {
		return true
	}

	if !it.fetched {
		return true
	}

	return it.hasMore
}

// Next returns the next item, fetching the next page when the buffer is
// exhausted. It returns ErrNoMoreItems once the sequence ends. A transport
// failure or an API-level failure on any page aborts the sequence; the same
// error is returned for every subsequent call.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.pos >= len(it.buffer) {
		if it.fetched && !it.hasMore {
			return zero, ErrNoMoreItems
		}

		if err := it.fetchPage(); err != nil {
			it.err = err

			return zero, err
		}
	}

	item := it.buffer[it.pos]
	it.pos++

	return item, nil
}

// All drains the iterator and returns the remaining items in server order.
func (it *PageIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to each remaining item. A non-nil error from fn stops
// iteration and is returned; no further pages are fetched.
func (it *PageIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// fetchPage loads the next page into the buffer and advances the cursor.
func (it *PageIterator[T]) fetchPage() error {
	if it.fetch == nil {
		return ErrFetcherRequired
	}

	if err := it.ctx.Err(); err != nil {
		return fmt.Errorf("pagination canceled: %w", err)
	}

	response, err := it.fetch(it.ctx, it.pageSize, it.offset)
	if err != nil {
		return fmt.Errorf("fetching page at offset %d: %w", it.offset, err)
	}

	if err := response.APIError(); err != nil {
		return fmt.Errorf("fetching page at offset %d: %w", it.offset, err)
	}

	it.fetched = true
	it.buffer = response.Data
	it.pos = 0
	it.offset += it.pageSize

	// A missing meta block on a paginated endpoint is malformed; treat it as
	// the last page rather than looping.
	it.hasMore = response.Pagination != nil && response.Pagination.HasMore

	if len(response.Data) == 0 && it.hasMore {
		it.logger.Warn("server returned an empty page but reports more results", map[string]interface{}{
			"offset":    it.offset - it.pageSize,
			"page_size": it.pageSize,
		})
	}

	return nil
}

// FetchAllPages fetches every page and returns the flattened items in server
// order. Options may cap the page count via MaxPages.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	iterator := NewPageIterator(ctx, fetch, opts.PageSize).WithLogger(opts.Logger)

	var items []T

	pages := 0

	for iterator.HasNext() {
		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}

		page, err := iterator.nextPage()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				break
			}

			return nil, err
		}

		items = append(items, page...)
		pages++
	}

	return items, nil
}

// nextPage returns the remainder of the current buffer, fetching one page
// when the buffer is empty. Used by the page-granular helpers.
func (it *PageIterator[T]) nextPage() ([]T, error) {
	if it.err != nil {
		return nil, it.err
	}

	if it.pos >= len(it.buffer) {
		if it.fetched && !it.hasMore {
			return nil, ErrNoMoreItems
		}

		if err := it.fetchPage(); err != nil {
			it.err = err

			return nil, err
		}
	}

	page := it.buffer[it.pos:]
	it.pos = len(it.buffer)

	return page, nil
}

// PageResult is one page delivered by StreamPages. Err is non-nil for the
// terminal result of a failed stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages sequentially and delivers them on the returned
// channel. The channel is closed when the collection is exhausted, an error
// occurs, or ctx is canceled. Consumers that stop receiving must cancel ctx
// to release the producing goroutine.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], opts *PaginationOptions) <-chan PageResult[T] {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		iterator := NewPageIterator(ctx, fetch, opts.PageSize).WithLogger(opts.Logger)

		pages := 0

		for iterator.HasNext() {
			if opts.MaxPages > 0 && pages >= opts.MaxPages {
				return
			}

			page, err := iterator.nextPage()
			if err != nil {
				if errors.Is(err, ErrNoMoreItems) {
					return
				}

				select {
				case results <- PageResult[T]{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			select {
			case results <- PageResult[T]{Items: page}:
			case <-ctx.Done():
				return
			}

			pages++
		}
	}()

	return results
}

// noopLogger discards all log output.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
