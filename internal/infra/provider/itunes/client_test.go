package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/infra/provider"
)

const (
	testBaseURL  = "https://itunes.example.com"
	testEndpoint = testBaseURL + SearchEndpoint
)

func newTestClient() *Client {
	cfg := provider.ClientConfig{
		BaseURL: testBaseURL,
		Timeout: 5 * time.Second,
		CB: provider.CBConfig{
			Enabled:      true,
			MaxRequests:  1,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
			MinRequests:  3,
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func testRequest(t *testing.T, term string, opts ...domain.RequestOption) domain.SearchRequest {
	t.Helper()

	req, err := domain.NewQueryBuilder("US").Build(term, opts...)
	require.NoError(t, err)

	return req
}

// TestClient_SearchURL tests the outbound URL shape.
func TestClient_SearchURL(t *testing.T) {
	client := New(provider.ClientConfig{}, zap.NewNop())

	url := client.SearchURL(testRequest(t, "jack johnson"))

	assert.Equal(t, "https://itunes.apple.com/search?country=US&limit=50&media=all&term=jack+johnson", url)
}

// TestClient_SearchURL_TrailingSlash tests that a configured trailing slash is not doubled.
func TestClient_SearchURL_TrailingSlash(t *testing.T) {
	client := New(provider.ClientConfig{BaseURL: testBaseURL + "/"}, zap.NewNop())

	url := client.SearchURL(testRequest(t, "u2", domain.WithLimit(5), domain.WithMedia(domain.MediaMusic)))

	assert.Equal(t, testEndpoint+"?country=US&limit=5&media=music&term=u2", url)
}

// TestClient_Fetch_Success tests that the raw body of a 200 response is returned.
func TestClient_Fetch_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	payload := loadFixture(t, "search.json")
	var gotQuery string
	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.RawQuery

			return httpmock.NewBytesResponse(200, payload), nil
		})

	client := newTestClient()
	req := testRequest(t, "café au lait", domain.WithMedia(domain.MediaMusic))
	body, err := client.Fetch(context.Background(), client.SearchURL(req))

	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "country=US&limit=50&media=music&term=caf%C3%A9+au+lait", gotQuery)
}

// TestClient_Fetch_NonOKStatus tests that any status other than 200 is a transport failure.
func TestClient_Fetch_NonOKStatus(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"204 No Content", 204},
		{"400 Bad Request", 400},
		{"403 Forbidden", 403},
		{"429 Too Many Requests", 429},
		{"500 Internal Server Error", 500},
		{"503 Service Unavailable", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", testEndpoint,
				httpmock.NewStringResponder(tt.statusCode, `{"results":[]}`))

			client := newTestClient()
			body, err := client.Fetch(context.Background(), client.SearchURL(testRequest(t, "jack johnson")))

			require.Error(t, err)
			assert.Nil(t, body)
			assert.ErrorIs(t, err, domain.ErrTransport)

			var statusErr *domain.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.statusCode, statusErr.StatusCode)
			assert.Contains(t, err.Error(), fmt.Sprintf("status %d", tt.statusCode))
		})
	}
}

// TestClient_Fetch_NetworkError tests network error handling.
func TestClient_Fetch_NetworkError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewErrorResponder(fmt.Errorf("network error: connection refused")))

	client := newTestClient()
	body, err := client.Fetch(context.Background(), client.SearchURL(testRequest(t, "jack johnson")))

	require.Error(t, err)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "fetching from itunes")
	assert.Contains(t, err.Error(), "connection refused")
}

// TestClient_Fetch_SingleAttempt tests that failures are never retried.
func TestClient_Fetch_SingleAttempt(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	callCount := 0
	httpmock.RegisterResponder("GET", testEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			callCount++

			return httpmock.NewStringResponse(500, "Server Error"), nil
		})

	client := newTestClient()
	_, err := client.Fetch(context.Background(), client.SearchURL(testRequest(t, "jack johnson")))

	require.Error(t, err)
	assert.Equal(t, 1, callCount)
}

// TestClient_Fetch_ContextCancellation tests that an expired deadline resolves as a transport failure.
func TestClient_Fetch_ContextCancellation(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	// Mock a slow response
	httpmock.RegisterResponder("GET", testEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			time.Sleep(200 * time.Millisecond)

			return httpmock.NewStringResponse(200, `{"results":[]}`), nil
		})

	client := newTestClient()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	body, err := client.Fetch(ctx, client.SearchURL(testRequest(t, "jack johnson")))

	require.Error(t, err)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, domain.ErrTransport)
}

// TestClient_CircuitBreaker_Opens tests that the breaker fails fast after repeated failures.
func TestClient_CircuitBreaker_Opens(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(500, "Internal Server Error"))

	client := newTestClient()
	url := client.SearchURL(testRequest(t, "jack johnson"))

	for i := 0; i < 3; i++ {
		_, err := client.Fetch(context.Background(), url)
		require.Error(t, err)
	}

	// CB should be open now - next request should fail without an HTTP call
	_, err := client.Fetch(context.Background(), url)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Equal(t, 3, httpmock.GetTotalCallCount())
}

// TestClient_CircuitBreaker_Disabled tests that a disabled breaker never trips.
func TestClient_CircuitBreaker_Disabled(t *testing.T) {
	client := New(provider.ClientConfig{BaseURL: testBaseURL}, zap.NewNop())
	httpmock.ActivateNonDefault(client.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(500, "Internal Server Error"))

	url := client.SearchURL(testRequest(t, "jack johnson"))
	for i := 0; i < 6; i++ {
		_, err := client.Fetch(context.Background(), url)
		require.Error(t, err)
	}

	assert.Equal(t, 6, httpmock.GetTotalCallCount())
}

// TestClient_Name tests the Name method.
func TestClient_Name(t *testing.T) {
	client := New(provider.ClientConfig{}, zap.NewNop())
	assert.Equal(t, "itunes", client.Name())
}
