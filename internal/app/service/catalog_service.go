// Package service provides application use cases.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"catalog-search-service/internal/domain"
)

// DefaultTimeout bounds a search when the caller's context has no deadline.
const DefaultTimeout = 20 * time.Second

// Config holds CatalogService settings.
type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// CatalogService runs catalog searches: build, fetch, decode.
// It keeps no per-call state and is safe for concurrent use.
type CatalogService struct {
	builder *domain.QueryBuilder
	client  domain.CatalogClient
	decoder domain.ResponseDecoder
	cache   domain.Cache
	cfg     Config
	logger  *zap.Logger
}

// NewCatalogService creates a new CatalogService. cache may be nil to
// disable response caching.
func NewCatalogService(
	builder *domain.QueryBuilder,
	client domain.CatalogClient,
	decoder domain.ResponseDecoder,
	cache domain.Cache,
	cfg Config,
	logger *zap.Logger,
) *CatalogService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &CatalogService{
		builder: builder,
		client:  client,
		decoder: decoder,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
	}
}

// Builder returns the query builder used by Search.
func (s *CatalogService) Builder() *domain.QueryBuilder {
	return s.builder
}

// Search builds a request from term and opts and executes it.
// An invalid term fails before any network call.
func (s *CatalogService) Search(ctx context.Context, term string, opts ...domain.RequestOption) (*domain.GroupedResults, error) {
	req, err := s.builder.Build(term, opts...)
	if err != nil {
		return nil, err
	}

	return s.Execute(ctx, req)
}

// Execute fetches and decodes req. The first failure ends the call; no
// partial results are returned.
func (s *CatalogService) Execute(ctx context.Context, req domain.SearchRequest) (*domain.GroupedResults, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	url := s.client.SearchURL(req)

	s.logger.Debug("searching catalog",
		zap.String("provider", s.client.Name()),
		zap.String("media", req.Media().String()),
		zap.Int("limit", req.Limit()),
		zap.String("country", req.Country()),
	)

	if raw := s.cached(ctx, url); raw != nil {
		grouped, err := s.decoder.Decode(raw)
		if err == nil {
			return grouped, nil
		}
		s.logger.Warn("discarding undecodable cache entry", zap.Error(err))
	}

	raw, err := s.client.Fetch(ctx, url)
	if err != nil {
		s.logger.Error("catalog fetch failed", zap.Error(err))

		return nil, err
	}

	grouped, err := s.decoder.Decode(raw)
	if err != nil {
		s.logger.Error("catalog decode failed", zap.Error(err), zap.Int("bytes", len(raw)))

		return nil, err
	}

	s.store(ctx, url, raw)

	s.logger.Debug("search completed",
		zap.Int("groups", grouped.Len()),
		zap.Int("count", grouped.Total()),
	)

	return grouped, nil
}

// SearchOutcome carries exactly one of Results or Err.
type SearchOutcome struct {
	Results *domain.GroupedResults
	Err     error
}

// SearchAsync runs Execute in its own goroutine. The returned channel
// yields exactly one outcome and is then closed.
func (s *CatalogService) SearchAsync(ctx context.Context, req domain.SearchRequest) <-chan SearchOutcome {
	out := make(chan SearchOutcome, 1)

	go func() {
		defer close(out)

		results, err := s.Execute(ctx, req)
		if err != nil {
			out <- SearchOutcome{Err: err}

			return
		}
		out <- SearchOutcome{Results: results}
	}()

	return out
}

// cached returns the cached body for url, or nil. Cache errors are not fatal.
func (s *CatalogService) cached(ctx context.Context, url string) []byte {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, url)
	if err != nil {
		s.logger.Warn("cache lookup failed, fetching", zap.Error(err))

		return nil
	}

	return raw
}

func (s *CatalogService) store(ctx context.Context, url string, raw []byte) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}

	if err := s.cache.Set(ctx, url, raw, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("cache store failed", zap.Error(err))
	}
}
