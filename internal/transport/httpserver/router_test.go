package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"catalog-search-service/internal/app/service"
	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/infra/provider/itunes"
	"catalog-search-service/internal/transport/httpserver/dto"
	"catalog-search-service/internal/transport/httpserver/middleware"
	"catalog-search-service/internal/validator"
)

const catalogBody = `{
  "resultCount": 3,
  "results": [
    {"kind": "song", "trackId": 1, "trackName": "Banana Pancakes", "primaryGenreName": "Rock"},
    {"kind": "feature-movie", "trackId": 2, "trackName": "Curious George"},
    {"kind": "song", "trackId": 3, "trackName": "Upside Down"}
  ]
}`

type stubClient struct {
	body    []byte
	err     error
	lastURL string
	calls   int
}

func (c *stubClient) Name() string { return "stub" }

func (c *stubClient) SearchURL(req domain.SearchRequest) string {
	return "https://catalog.test/search?" + req.Query()
}

func (c *stubClient) Fetch(_ context.Context, url string) ([]byte, error) {
	c.calls++
	c.lastURL = url
	return c.body, c.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer(t *testing.T, client *stubClient, pingers ...stubPinger) *Server {
	t.Helper()

	logger := zap.NewNop()
	svc := service.NewCatalogService(
		domain.NewQueryBuilder("US"),
		client,
		itunes.NewDecoder(logger),
		nil,
		service.Config{},
		logger,
	)

	ps := make([]middleware.Pinger, 0, len(pingers))
	for _, p := range pingers {
		ps = append(ps, p)
	}

	return NewServer(ServerConfig{}, svc, validator.New(), logger, ps...)
}

func doGet(t *testing.T, srv *Server, target string) (int, []byte) {
	t.Helper()

	resp, err := srv.App.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func decodeError(t *testing.T, body []byte) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	return resp
}

// TestSearch_GroupsInFirstSeenOrder tests the grouped payload.
func TestSearch_GroupsInFirstSeenOrder(t *testing.T) {
	client := &stubClient{body: []byte(catalogBody)}
	srv := newTestServer(t, client)

	status, body := doGet(t, srv, "/api/v1/search?term=jack+johnson")
	require.Equal(t, http.StatusOK, status)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(body, &resp))

	assert.Equal(t, "country=US&limit=50&media=all&term=jack+johnson", resp.Query)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Groups, 2)

	assert.Equal(t, "song", resp.Groups[0].Kind)
	assert.Equal(t, "Songs", resp.Groups[0].Title)
	assert.Equal(t, 2, resp.Groups[0].Count)
	assert.Equal(t, "Banana Pancakes", resp.Groups[0].Results[0].Name)
	assert.Equal(t, "Upside Down", resp.Groups[0].Results[1].Name)

	assert.Equal(t, "feature-movie", resp.Groups[1].Kind)
	assert.Equal(t, int64(2), resp.Groups[1].Results[0].ID)
}

// TestSearch_Options tests that query parameters reach the outbound URL.
func TestSearch_Options(t *testing.T) {
	tests := []struct {
		name   string
		target string
		query  string
	}{
		{
			name:   "limit above maximum is clamped",
			target: "/api/v1/search?term=abba&limit=500",
			query:  "country=US&limit=200&media=all&term=abba",
		},
		{
			name:   "non-positive limit becomes one",
			target: "/api/v1/search?term=abba&limit=0",
			query:  "country=US&limit=1&media=all&term=abba",
		},
		{
			name:   "non-numeric limit falls back to default",
			target: "/api/v1/search?term=abba&limit=lots",
			query:  "country=US&limit=50&media=all&term=abba",
		},
		{
			name:   "media and country",
			target: "/api/v1/search?term=abba&media=music&country=se",
			query:  "country=SE&limit=50&media=music&term=abba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{body: []byte(`{"resultCount":0,"results":[]}`)}
			srv := newTestServer(t, client)

			status, _ := doGet(t, srv, tt.target)
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, "https://catalog.test/search?"+tt.query, client.lastURL)
		})
	}
}

// TestSearch_BadRequest tests that invalid input never reaches the catalog.
func TestSearch_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "missing term", target: "/api/v1/search", code: "VALIDATION_ERROR"},
		{name: "whitespace term", target: "/api/v1/search?term=%20%20", code: "INVALID_TERM"},
		{name: "unknown media", target: "/api/v1/search?term=abba&media=vinyl", code: "INVALID_MEDIA"},
		{name: "bad country", target: "/api/v1/search?term=abba&country=usa", code: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{body: []byte(catalogBody)}
			srv := newTestServer(t, client)

			status, body := doGet(t, srv, tt.target)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.code, decodeError(t, body).Code)
			assert.Zero(t, client.calls)
		})
	}
}

// TestSearch_UpstreamFailures tests the mapping of catalog failures.
func TestSearch_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
		code   string
	}{
		{
			name:   "status error",
			client: &stubClient{err: &domain.StatusError{StatusCode: http.StatusServiceUnavailable}},
			code:   "UPSTREAM_ERROR",
		},
		{
			name:   "network error",
			client: &stubClient{err: errors.Join(domain.ErrTransport, errors.New("connection refused"))},
			code:   "UPSTREAM_ERROR",
		},
		{
			name:   "malformed body",
			client: &stubClient{body: []byte(`<html>oops</html>`)},
			code:   "DECODE_ERROR",
		},
		{
			name:   "missing results",
			client: &stubClient{body: []byte(`{"resultCount":0}`)},
			code:   "DECODE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.client)

			status, body := doGet(t, srv, "/api/v1/search?term=abba")
			assert.Equal(t, http.StatusBadGateway, status)
			assert.Equal(t, tt.code, decodeError(t, body).Code)
		})
	}
}

// TestCatalog_Media tests the media listing.
func TestCatalog_Media(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	status, body := doGet(t, srv, "/api/v1/media")
	require.Equal(t, http.StatusOK, status)

	var resp []dto.MediaResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp, len(domain.MediaKinds()))
	assert.Equal(t, domain.MediaKinds()[0].String(), resp[0].Tag)
}

// TestCatalog_Kinds tests the result kind listing.
func TestCatalog_Kinds(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	status, body := doGet(t, srv, "/api/v1/kinds")
	require.Equal(t, http.StatusOK, status)

	var resp []dto.KindResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp, len(domain.ResultKinds()))

	titles := make(map[string]string, len(resp))
	for _, k := range resp {
		titles[k.Kind] = k.Title
	}
	assert.Equal(t, "Movies", titles["feature-movie"])
}

// TestHealthCheck tests the probe endpoints.
func TestHealthCheck(t *testing.T) {
	t.Run("liveness", func(t *testing.T) {
		srv := newTestServer(t, &stubClient{}, stubPinger{err: errors.New("down")})

		status, _ := doGet(t, srv, "/livez")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("ready", func(t *testing.T) {
		srv := newTestServer(t, &stubClient{}, stubPinger{})

		status, _ := doGet(t, srv, "/readyz")
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("dependency down", func(t *testing.T) {
		srv := newTestServer(t, &stubClient{}, stubPinger{}, stubPinger{err: errors.New("down")})

		status, _ := doGet(t, srv, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, status)
	})
}

// TestNotFound tests the error handler for unknown routes.
func TestNotFound(t *testing.T) {
	srv := newTestServer(t, &stubClient{})

	status, body := doGet(t, srv, "/api/v1/unknown")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decodeError(t, body).Code)
}
