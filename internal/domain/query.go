package domain

import (
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLimit is used when no limit option is given.
	DefaultLimit = 50
	// MinLimit and MaxLimit bound the number of results requested.
	MinLimit = 1
	MaxLimit = 200

	// DefaultCountryCode is used when no valid country code is configured.
	DefaultCountryCode = "US"
)

// Query parameter names understood by the catalog search endpoint.
const (
	paramTerm    = "term"
	paramCountry = "country"
	paramMedia   = "media"
	paramLimit   = "limit"
)

// SearchRequest is a validated, normalized search. It is immutable once
// returned by QueryBuilder.Build.
type SearchRequest struct {
	term    string
	media   MediaKind
	limit   int
	country string
}

// Term returns the normalized, percent-encoded term.
func (r SearchRequest) Term() string { return r.term }

// Media returns the media filter.
func (r SearchRequest) Media() MediaKind { return r.media }

// Limit returns the clamped result limit.
func (r SearchRequest) Limit() int { return r.limit }

// Country returns the two-letter store country code.
func (r SearchRequest) Country() string { return r.country }

// Query serializes the request as key=value pairs sorted by key and
// joined with '&'. The output is deterministic and therefore usable as a
// cache key.
func (r SearchRequest) Query() string {
	items := map[string]string{
		paramTerm:    r.term,
		paramCountry: r.country,
		paramMedia:   r.media.String(),
		paramLimit:   strconv.Itoa(r.limit),
	}

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+items[k])
	}

	return strings.Join(pairs, "&")
}

// RequestOption customizes a single Build call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	media   MediaKind
	limit   int
	country string
}

// WithMedia restricts the search to one media kind.
func WithMedia(m MediaKind) RequestOption {
	return func(o *requestOptions) { o.media = m }
}

// WithLimit sets the number of results. Values are clamped to [1, 200].
func WithLimit(n int) RequestOption {
	return func(o *requestOptions) { o.limit = n }
}

// WithCountry overrides the builder's country code for one request.
func WithCountry(cc string) RequestOption {
	return func(o *requestOptions) { o.country = cc }
}

// QueryBuilder builds SearchRequests for a configured store country.
type QueryBuilder struct {
	country string
}

// NewQueryBuilder creates a builder. An empty or malformed country code
// falls back to DefaultCountryCode.
func NewQueryBuilder(country string) *QueryBuilder {
	return &QueryBuilder{country: normalizeCountry(country, DefaultCountryCode)}
}

// Country returns the builder's default country code.
func (b *QueryBuilder) Country() string {
	return b.country
}

// Build validates and normalizes the input into a SearchRequest.
func (b *QueryBuilder) Build(term string, opts ...RequestOption) (SearchRequest, error) {
	o := requestOptions{
		media: MediaAll,
		limit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}

	encoded, err := EncodeTerm(term)
	if err != nil {
		return SearchRequest{}, err
	}

	if !o.media.Valid() {
		return SearchRequest{}, &MediaError{Value: string(o.media)}
	}

	country := b.country
	if o.country != "" {
		country = normalizeCountry(o.country, b.country)
	}

	return SearchRequest{
		term:    encoded,
		media:   o.media,
		limit:   ClampLimit(o.limit),
		country: country,
	}, nil
}

// ClampLimit saturates n into [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	switch {
	case n < MinLimit:
		return MinLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}

// EncodeTerm trims the term, replaces spaces with '+' and percent-encodes
// everything else that is not an unreserved URL character.
func EncodeTerm(term string) (string, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" || !utf8.ValidString(trimmed) {
		return "", ErrInvalidTerm
	}

	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(trimmed) * 3)
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		switch {
		case c == ' ':
			sb.WriteByte('+')
		case isUnreserved(c) || c == '+':
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(hex[c>>4])
			sb.WriteByte(hex[c&0x0f])
		}
	}

	return sb.String(), nil
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}

	return false
}

// normalizeCountry uppercases cc and returns fallback unless it is two ASCII letters.
func normalizeCountry(cc, fallback string) string {
	cc = strings.ToUpper(strings.TrimSpace(cc))
	if len(cc) != 2 {
		return fallback
	}
	for i := 0; i < len(cc); i++ {
		if cc[i] < 'A' || cc[i] > 'Z' {
			return fallback
		}
	}

	return cc
}
