package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/nearby"
)

// Ensure LoggingBookmarkService implements nearby.BookmarkService.
var _ nearby.BookmarkService = (*LoggingBookmarkService)(nil)

// LoggingBookmarkService wraps a BookmarkService and logs mutations.
// Reads are not logged; every search reads the bookmarks.
type LoggingBookmarkService struct {
	next   nearby.BookmarkService
	logger *slog.Logger
}

// NewLoggingBookmarkService creates a new LoggingBookmarkService.
func NewLoggingBookmarkService(next nearby.BookmarkService, logger *slog.Logger) *LoggingBookmarkService {
	return &LoggingBookmarkService{next: next, logger: logger}
}

// FindBookmarks delegates to the wrapped service.
func (s *LoggingBookmarkService) FindBookmarks(ctx context.Context) ([]*nearby.Location, error) {
	return s.next.FindBookmarks(ctx)
}

// CreateBookmark delegates to the wrapped service and logs the result.
func (s *LoggingBookmarkService) CreateBookmark(ctx context.Context, location *nearby.Location) (err error) {
	defer func() {
		s.logger.Info("bookmark created", "id", location.ID, "name", location.Name, "err", err)
	}()
	return s.next.CreateBookmark(ctx, location)
}

// MoveBookmark delegates to the wrapped service and logs the result.
func (s *LoggingBookmarkService) MoveBookmark(ctx context.Context, from, to int) (err error) {
	defer func() {
		s.logger.Info("bookmark moved", "from", from, "to", to, "err", err)
	}()
	return s.next.MoveBookmark(ctx, from, to)
}

// DeleteBookmark delegates to the wrapped service and logs the result.
func (s *LoggingBookmarkService) DeleteBookmark(ctx context.Context, id int) (err error) {
	defer func() {
		s.logger.Info("bookmark deleted", "id", id, "err", err)
	}()
	return s.next.DeleteBookmark(ctx, id)
}
