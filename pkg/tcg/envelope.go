package tcg

// Envelope is the raw JSON shape the API returns for every call: the data
// payload, an optional meta block on paginated list endpoints, the usage
// block, and an error/code pair on API-level failures. A 2xx response may
// carry a populated error alongside an empty data payload; that is an
// API-level failure, distinct from a transport-level (non-2xx) failure.
type Envelope[T any] struct {
	Data     T           `json:"data"`
	Meta     *Pagination `json:"meta,omitempty"`
	Metadata Usage       `json:"_metadata"`
	Error    string      `json:"error,omitempty"`
	Code     string      `json:"code,omitempty"`
}

// Response is the uniform client-facing result. Pagination is non-nil exactly
// when the raw envelope carried a meta block. Usage is always populated when
// the transport succeeded. Error and Code are set only on API-level failures;
// callers check them explicitly rather than catching a returned error.
type Response[T any] struct {
	Data       T           `json:"data"                 yaml:"data"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Usage      Usage       `json:"usage"                yaml:"usage"`
	Error      string      `json:"error,omitempty"      yaml:"error,omitempty"`
	Code       string      `json:"code,omitempty"       yaml:"code,omitempty"`
}

// Normalize maps a raw envelope into the uniform response shape. It is a pure
// function: the envelope is not mutated and the pagination block is copied,
// not aliased.
func Normalize[T any](envelope *Envelope[T]) *Response[T] {
	response := &Response[T]{
		Data:  envelope.Data,
		Usage: envelope.Metadata,
		Error: envelope.Error,
		Code:  envelope.Code,
	}

	if envelope.Meta != nil {
		meta := *envelope.Meta
		response.Pagination = &meta
	}

	return response
}

// Failed reports whether the response carries an API-level failure.
func (r *Response[T]) Failed() bool {
	return r.Error != ""
}

// APIError returns the API-level failure as an error, or nil when the call
// succeeded. Useful where a failure must abort control flow, e.g. inside the
// pagination driver.
func (r *Response[T]) APIError() error {
	if r.Error == "" {
		return nil
	}

	return &APIError{Code: r.Code, Message: r.Error}
}
