// Package itunes implements the iTunes catalog search client and the
// decoder for its JSON payload.
package itunes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"catalog-search-service/internal/domain"
	"catalog-search-service/internal/infra/provider"
)

const (
	// DefaultBaseURL is the public catalog host.
	DefaultBaseURL = "https://itunes.apple.com"

	// SearchEndpoint is the API path for catalog searches.
	SearchEndpoint = "/search"
)

// Client implements domain.CatalogClient for the iTunes Search API.
// It is safe for concurrent use.
type Client struct {
	name    string
	baseURL string
	client  *resty.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

// New creates a new iTunes client.
func New(cfg provider.ClientConfig, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		name:    "itunes",
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  provider.NewRestyClient(cfg),
		cb:      provider.NewCircuitBreaker[[]byte]("itunes", cfg.CB, logger),
		logger:  logger,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return c.name
}

// SearchURL returns the absolute search URL for req.
func (c *Client) SearchURL(req domain.SearchRequest) string {
	return c.baseURL + SearchEndpoint + "?" + req.Query()
}

// Fetch issues one GET for url and returns the body of a 200 response.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := c.cb.Execute(func() ([]byte, error) {
		r, err := c.client.R().
			SetContext(ctx).
			Get(url)
		if err != nil {
			return nil, err
		}
		if r.StatusCode() != http.StatusOK {
			return nil, &domain.StatusError{StatusCode: r.StatusCode()}
		}

		return r.Body(), nil
	})

	if err != nil {
		c.logger.Warn("itunes fetch failed",
			zap.String("url", url),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		if errors.Is(err, domain.ErrTransport) {
			return nil, fmt.Errorf("fetching from %s: %w", c.name, err)
		}

		return nil, fmt.Errorf("fetching from %s: %w: %w", c.name, domain.ErrTransport, err)
	}

	c.logger.Debug("itunes fetch completed",
		zap.String("url", url),
		zap.Int("bytes", len(body)),
	)

	return body, nil
}
