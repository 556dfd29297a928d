// Package domain contains the catalog search model: request building,
// result kinds and kind-grouped result sets.
// This package has no external dependencies (only stdlib).
package domain

// SearchResult is a single decoded catalog entry.
type SearchResult struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Artwork        string `json:"artwork,omitempty"`
	Genre          string `json:"genre,omitempty"`
	URL            string `json:"url,omitempty"`
	Kind           string `json:"kind"` // raw kind string from the service
	PreviewURL     string `json:"preview_url,omitempty"`
	CollectionName string `json:"collection_name,omitempty"`
}

// ResultKind returns the normalized kind derived from the raw Kind string.
func (r SearchResult) ResultKind() ResultKind {
	return ParseResultKind(r.Kind)
}

// GroupedResults maps result kinds to their results. Kinds keep the order
// in which they were first seen and every group keeps payload order.
// A kind with no results is not present.
type GroupedResults struct {
	order  []ResultKind
	groups map[ResultKind][]SearchResult
}

// GroupByKind partitions results by ResultKind. Distinct unrecognized raw
// kinds all land in the single ResultKindUnknown group.
func GroupByKind(results []SearchResult) *GroupedResults {
	g := &GroupedResults{
		groups: make(map[ResultKind][]SearchResult),
	}

	for _, r := range results {
		kind := r.ResultKind()
		if _, seen := g.groups[kind]; !seen {
			g.order = append(g.order, kind)
		}
		g.groups[kind] = append(g.groups[kind], r)
	}

	return g
}

// Kinds returns the present kinds in first-seen order.
func (g *GroupedResults) Kinds() []ResultKind {
	out := make([]ResultKind, len(g.order))
	copy(out, g.order)

	return out
}

// Results returns a copy of the results for kind, or nil if absent.
func (g *GroupedResults) Results(kind ResultKind) []SearchResult {
	group, ok := g.groups[kind]
	if !ok {
		return nil
	}
	out := make([]SearchResult, len(group))
	copy(out, group)

	return out
}

// Has reports whether kind has at least one result.
func (g *GroupedResults) Has(kind ResultKind) bool {
	_, ok := g.groups[kind]

	return ok
}

// Len returns the number of groups.
func (g *GroupedResults) Len() int {
	return len(g.order)
}

// Total returns the number of results across all groups.
func (g *GroupedResults) Total() int {
	total := 0
	for _, group := range g.groups {
		total += len(group)
	}

	return total
}

// Map returns the groups as a plain map. The map and its slices are copies.
func (g *GroupedResults) Map() map[ResultKind][]SearchResult {
	out := make(map[ResultKind][]SearchResult, len(g.groups))
	for _, kind := range g.order {
		out[kind] = g.Results(kind)
	}

	return out
}
