package domain

import (
	"context"
	"time"
)

// CatalogClient is the HTTP collaborator that talks to the catalog service.
// Implementations: internal/infra/provider/itunes/client.go
type CatalogClient interface {
	// Name returns the identifier used in logs.
	Name() string

	// SearchURL returns the absolute URL for the request.
	SearchURL(req SearchRequest) string

	// Fetch performs a single GET and returns the body of a 200 response.
	// Any other outcome is an error wrapping ErrTransport.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ResponseDecoder turns a raw catalog payload into grouped results.
// Implementations: internal/infra/provider/itunes/decoder.go
type ResponseDecoder interface {
	// Decode parses raw; failures wrap ErrDecode.
	Decode(raw []byte) (*GroupedResults, error)
}

// Cache stores raw response bodies keyed by request URL.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
