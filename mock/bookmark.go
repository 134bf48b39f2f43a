package mock

import (
	"context"

	"github.com/fwojciec/nearby"
)

var _ nearby.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of nearby.BookmarkService.
type BookmarkService struct {
	FindBookmarksFn  func(ctx context.Context) ([]*nearby.Location, error)
	CreateBookmarkFn func(ctx context.Context, location *nearby.Location) error
	MoveBookmarkFn   func(ctx context.Context, from, to int) error
	DeleteBookmarkFn func(ctx context.Context, id int) error
}

func (s *BookmarkService) FindBookmarks(ctx context.Context) ([]*nearby.Location, error) {
	return s.FindBookmarksFn(ctx)
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, location *nearby.Location) error {
	return s.CreateBookmarkFn(ctx, location)
}

func (s *BookmarkService) MoveBookmark(ctx context.Context, from, to int) error {
	return s.MoveBookmarkFn(ctx, from, to)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id int) error {
	return s.DeleteBookmarkFn(ctx, id)
}
