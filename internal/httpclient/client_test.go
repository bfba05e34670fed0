package httpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cardindex-io/tcgpricing/internal/httpclient"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/games", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-API-Key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "pokemon", "name": "Pokemon"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		req := &httpclient.Request{
			Method: "GET",
			Path:   "/games",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "pokemon", result["id"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/sets", request.URL.Path)
			assert.Equal(t, "game=pokemon&limit=20", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		req := &httpclient.Request{
			Method: "GET",
			Path:   "/sets",
			Query:  url.Values{"game": []string{"pokemon"}, "limit": []string{"20"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body []map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			require.Len(t, body, 1)
			assert.Equal(t, "88563", body[0]["tcgplayerId"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		req := &httpclient.Request{
			Method: "POST",
			Path:   "/cards",
			Body:   []map[string]string{{"tcgplayerId": "88563"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"error":"invalid API key","code":"UNAUTHORIZED"}`))
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "bad-key")

		resp, err := client.Get(context.Background(), "/games", nil)
		require.Error(t, err)
		assert.Equal(t, 401, resp.StatusCode)

		reqErr := &tcg.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 401, reqErr.StatusCode)
		assert.Equal(t, "invalid API key", reqErr.Message)
		assert.True(t, tcg.IsUnauthorized(err))
	})

	t.Run("error response with non-JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte("Bad Gateway"))
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/games", nil)
		require.Error(t, err)

		reqErr := &tcg.RequestError{}
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, 502, reqErr.StatusCode)
		assert.Empty(t, reqErr.Message)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		req := &httpclient.Request{
			Method: "GET",
			Path:   "/games",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("single network call per invocation", func(t *testing.T) {
		t.Parallel()

		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			calls++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpclient.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/games", nil)
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestClient_UserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "my-agent/2.0", request.Header.Get("User-Agent"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpclient.NewClient(server.URL, "test-key", httpclient.WithUserAgent("my-agent/2.0"))

	_, err := client.Get(context.Background(), "/games", nil)
	require.NoError(t, err)
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := httpclient.NewClient(server.URL, "test-key",
		httpclient.WithLogger(logger),
		httpclient.WithDebug(true))

	_, err := client.Get(context.Background(), "/games", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, logger.logs)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "injected", request.Header.Get("X-Trace"))

		_, _ = writer.Write([]byte(`{"data":[],"_metadata":{"apiRequestsUsed":7,"apiRequestsRemaining":993}}`))
	}))
	defer server.Close()

	tracker := tcg.NewUsageTracker()

	chain := tcg.NewInterceptorChain()
	chain.AddRequestInterceptor(tcg.HeaderInterceptor(map[string]string{"X-Trace": "injected"}))
	chain.AddResponseInterceptor(tcg.UsageTrackingInterceptor(tracker))

	client := httpclient.NewClient(server.URL, "test-key", httpclient.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/games", nil)
	require.NoError(t, err)

	usage, seen := tracker.Latest()
	require.True(t, seen)
	assert.Equal(t, 7, usage.RequestsUsed)
}
