// Package httpclient implements the HTTP transport for the pricing API.
//
// It performs exactly one network call per invocation: the underlying
// retryable client is configured with zero retries unless the caller opts in
// via WithRetryConfig. Non-2xx statuses are classified as transport failures
// and returned as *tcg.RequestError; 2xx bodies are handed back verbatim for
// the caller to decode.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cardindex-io/tcgpricing/internal/constants"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
)

// Request describes one HTTP call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of one HTTP call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the transport invoker. It owns the base URL, the API key header,
// and the interceptor chain; it knows nothing about envelope shapes beyond
// extracting an error message from failed responses.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *retryablehttp.Client
	logger       tcg.Logger
	userAgent    string
	debug        bool
	interceptors *tcg.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger tcg.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts in to transport retries for transient failures.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the default timeout of the underlying client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors sets the interceptor chain.
func WithInterceptors(chain *tcg.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport invoker for the given endpoint and key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request with parameters in the URL query string.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with the payload as a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Do performs one HTTP call. A non-2xx status yields a *tcg.RequestError
// carrying the server's error message when the body parses as JSON. The
// response is returned alongside the error so callers can inspect status and
// headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyBytes = encoded
	}

	interceptReq := &tcg.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: c.buildHeaders(req),
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq); err != nil {
			return nil, err
		}
	}

	var rawBody interface{}
	if bodyBytes != nil {
		rawBody = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header = interceptReq.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var callErr error
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		callErr = tcg.ParseRequestError(httpResp.StatusCode, respBody)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		})
	}

	if c.interceptors != nil {
		interceptResp := &tcg.InterceptedResponse{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
			Error:      callErr,
		}
		if err := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp); err != nil {
			return response, err
		}
	}

	if callErr != nil {
		return response, callErr
	}

	return response, nil
}

// buildHeaders assembles the headers for one request: API key, content type
// negotiation, user agent, then per-request overrides.
func (c *Client) buildHeaders(req *Request) http.Header {
	headers := make(http.Header)
	headers.Set(constants.APIKeyHeader, c.apiKey)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		headers.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}
