package itunes

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"catalog-search-service/internal/domain"
)

// Decoder implements domain.ResponseDecoder for the iTunes search payload.
//
// Elements missing trackId, trackName or kind are skipped; the decode as a
// whole fails only when the envelope is malformed or has no results array.
type Decoder struct {
	logger *zap.Logger
}

// NewDecoder creates a new Decoder.
func NewDecoder(logger *zap.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// Decode parses raw in a single typed pass and groups the results by kind.
func (d *Decoder) Decode(raw []byte) (*domain.GroupedResults, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	if resp.Results == nil {
		return nil, fmt.Errorf("%w: missing results array", domain.ErrDecode)
	}

	items := *resp.Results
	results := make([]domain.SearchResult, 0, len(items))
	skipped := 0

	for idx := range items {
		item := &items[idx]
		if !item.Complete() {
			skipped++
			continue
		}
		results = append(results, item.ToDomain())
	}

	if skipped > 0 {
		d.logger.Debug("skipped incomplete results",
			zap.Int("skipped", skipped),
			zap.Int("decoded", len(results)),
		)
	}

	return domain.GroupByKind(results), nil
}
