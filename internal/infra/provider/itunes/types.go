package itunes

import "catalog-search-service/internal/domain"

// Response represents the JSON envelope returned by the search endpoint.
// Results is a pointer so a missing or null "results" key can be told apart
// from an empty array.
type Response struct {
	ResultCount int     `json:"resultCount"`
	Results     *[]Item `json:"results"`
}

// Item represents a single entry of the results array. Pointer fields
// distinguish absent values from empty ones.
type Item struct {
	TrackID          *int64  `json:"trackId"`
	TrackName        *string `json:"trackName"`
	ArtworkURL100    *string `json:"artworkUrl100"`
	PrimaryGenreName *string `json:"primaryGenreName"`
	TrackViewURL     *string `json:"trackViewUrl"`
	Kind             *string `json:"kind"`
	PreviewURL       *string `json:"previewUrl"`
	CollectionName   *string `json:"collectionName"`
}

// Complete reports whether the item carries every required field.
func (i *Item) Complete() bool {
	return i.TrackID != nil && i.TrackName != nil && i.Kind != nil
}

// ToDomain converts Item to domain.SearchResult. Optional fields default to "".
func (i *Item) ToDomain() domain.SearchResult {
	return domain.SearchResult{
		ID:             deref(i.TrackID),
		Name:           deref(i.TrackName),
		Artwork:        deref(i.ArtworkURL100),
		Genre:          deref(i.PrimaryGenreName),
		URL:            deref(i.TrackViewURL),
		Kind:           deref(i.Kind),
		PreviewURL:     deref(i.PreviewURL),
		CollectionName: deref(i.CollectionName),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
