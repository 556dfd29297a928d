package dto

import "catalog-search-service/internal/domain"

// ResultResponse represents a single search result.
type ResultResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Artwork        string `json:"artwork,omitempty"`
	Genre          string `json:"genre,omitempty"`
	URL            string `json:"url,omitempty"`
	Kind           string `json:"kind"`
	PreviewURL     string `json:"preview_url,omitempty"`
	CollectionName string `json:"collection_name,omitempty"`
}

// GroupResponse holds the results of one kind.
type GroupResponse struct {
	Kind    string           `json:"kind"`
	Tag     string           `json:"tag"`
	Title   string           `json:"title"`
	Count   int              `json:"count"`
	Results []ResultResponse `json:"results"`
}

// SearchResponse represents the grouped search results response.
// Groups appear in the order their kind was first seen.
type SearchResponse struct {
	Query  string          `json:"query"`
	Total  int             `json:"total"`
	Groups []GroupResponse `json:"groups"`
}

// FromDomainResult converts domain.SearchResult to ResultResponse.
func FromDomainResult(r domain.SearchResult) ResultResponse {
	return ResultResponse{
		ID:             r.ID,
		Name:           r.Name,
		Artwork:        r.Artwork,
		Genre:          r.Genre,
		URL:            r.URL,
		Kind:           r.Kind,
		PreviewURL:     r.PreviewURL,
		CollectionName: r.CollectionName,
	}
}

// FromGroupedResults converts domain.GroupedResults to SearchResponse.
func FromGroupedResults(req domain.SearchRequest, grouped *domain.GroupedResults) SearchResponse {
	resp := SearchResponse{
		Query:  req.Query(),
		Total:  grouped.Total(),
		Groups: make([]GroupResponse, 0, grouped.Len()),
	}

	for _, kind := range grouped.Kinds() {
		results := grouped.Results(kind)
		group := GroupResponse{
			Kind:    kind.String(),
			Tag:     kind.Tag(),
			Title:   kind.DisplayTitle(),
			Count:   len(results),
			Results: make([]ResultResponse, len(results)),
		}
		for i, r := range results {
			group.Results[i] = FromDomainResult(r)
		}
		resp.Groups = append(resp.Groups, group)
	}

	return resp
}

// MediaResponse describes one media filter.
type MediaResponse struct {
	Tag   string `json:"tag"`
	Title string `json:"title"`
}

// FromMediaKinds lists every media filter.
func FromMediaKinds(kinds []domain.MediaKind) []MediaResponse {
	out := make([]MediaResponse, len(kinds))
	for i, m := range kinds {
		out[i] = MediaResponse{Tag: m.String(), Title: m.Title()}
	}

	return out
}

// KindResponse describes one result kind.
type KindResponse struct {
	Kind  string `json:"kind"`
	Tag   string `json:"tag"`
	Title string `json:"title"`
}

// FromResultKinds lists every result kind.
func FromResultKinds(kinds []domain.ResultKind) []KindResponse {
	out := make([]KindResponse, len(kinds))
	for i, k := range kinds {
		out[i] = KindResponse{Kind: k.String(), Tag: k.Tag(), Title: k.DisplayTitle()}
	}

	return out
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
