package nearby

import "context"

// SearchFunc receives the outcome of a search. A nil slice means there is
// nothing to show: the query was empty, nothing matched, or the search
// failed. A non-nil slice is never empty.
type SearchFunc func(locations []*Location)

// SearchService finds catalog locations by partial name.
type SearchService interface {
	// Search runs the query in the background and calls fn with the
	// results. Bookmarked locations are never returned. An empty query
	// calls fn(nil) before Search returns.
	Search(ctx context.Context, text string, fn SearchFunc)
}
