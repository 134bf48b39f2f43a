package nearby

import "context"

// BookmarkService represents the user's ordered list of bookmarked
// locations.
type BookmarkService interface {
	// FindBookmarks returns the bookmarked locations in user order.
	FindBookmarks(ctx context.Context) ([]*Location, error)

	// CreateBookmark appends a location to the list.
	// Returns ECONFLICT if the location is already bookmarked.
	CreateBookmark(ctx context.Context, location *Location) error

	// MoveBookmark moves the bookmark at index from to index to.
	// Returns EINVALID if either index is out of range.
	MoveBookmark(ctx context.Context, from, to int) error

	// DeleteBookmark removes the bookmark for a location.
	// Returns ENOTFOUND if the location is not bookmarked and ECONFLICT
	// when it is the last remaining bookmark.
	DeleteBookmark(ctx context.Context, id int) error
}

// LocationIDs returns the IDs of locations in order.
func LocationIDs(locations []*Location) []int {
	ids := make([]int, 0, len(locations))
	for _, l := range locations {
		ids = append(ids, l.ID)
	}
	return ids
}
