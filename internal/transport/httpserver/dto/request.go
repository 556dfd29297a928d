// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"strconv"
	"strings"

	"catalog-search-service/internal/domain"
)

// SearchRequest represents the query parameters of GET /api/v1/search.
type SearchRequest struct {
	Term    string `query:"term" validate:"required,max=200"`
	Media   string `query:"media" validate:"omitempty,max=32"`
	Limit   string `query:"limit"`
	Country string `query:"country" validate:"omitempty,len=2,alpha"`
}

// ToOptions converts the request to builder options. An empty or
// non-numeric limit is left out so the builder default applies.
func (r *SearchRequest) ToOptions() ([]domain.RequestOption, error) {
	media, err := domain.ParseMediaKind(r.Media)
	if err != nil {
		return nil, err
	}

	opts := []domain.RequestOption{domain.WithMedia(media)}

	if n, err := strconv.Atoi(strings.TrimSpace(r.Limit)); err == nil {
		opts = append(opts, domain.WithLimit(n))
	}
	if r.Country != "" {
		opts = append(opts, domain.WithCountry(r.Country))
	}

	return opts, nil
}
