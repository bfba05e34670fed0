package tcg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an API-level failure: a 2xx exchange whose envelope
// carries a populated error/code pair. Resource clients return it as response
// data, not as an error; the pagination driver raises it to abort a sequence.
type APIError struct {
	Code    string `json:"code"  yaml:"code"`
	Message string `json:"error" yaml:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// RequestError represents a transport-level failure: a non-2xx HTTP status.
// Message carries the server-supplied error text when the body was parseable
// JSON, otherwise a generic description of the status.
type RequestError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"error"       yaml:"error"`
	Code       string `json:"code"        yaml:"code"`
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// API error codes the server uses in the envelope's code field.
const (
	ErrorCodeInvalidRequest = "INVALID_REQUEST"
	ErrorCodeNotFound       = "NOT_FOUND"
	ErrorCodeUnauthorized   = "UNAUTHORIZED"
	ErrorCodeRateLimited    = "RATE_LIMIT_EXCEEDED"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrFetcherRequired = errors.New("page fetch function is required")
	ErrNoMoreItems     = errors.New("no more items")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusNotFound
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusUnauthorized
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeUnauthorized
	}

	return false
}

// IsRateLimited checks if the error reports an exhausted request quota.
func IsRateLimited(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusTooManyRequests
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeRateLimited
	}

	return false
}

// ParseRequestError builds a RequestError for a non-2xx response body. The
// body's error/code fields are used when it parses as JSON; otherwise the
// error carries only the status code.
func ParseRequestError(statusCode int, body []byte) *RequestError {
	reqErr := &RequestError{StatusCode: statusCode}

	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		reqErr.Message = envelope.Error
		reqErr.Code = envelope.Code
	}

	return reqErr
}
