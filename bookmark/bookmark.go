// Package bookmark implements the user's bookmark list on top of
// nearby.Storage.
package bookmark

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/nearby"
)

// Storage names.
const (
	// StorageName is the name the bookmark list is persisted under.
	StorageName = "bookmarked_locations"
	// DefaultsName is the bundled list used before anything was saved.
	DefaultsName = "default_bookmarks"
)

// Ensure Service implements nearby.BookmarkService at compile time.
var _ nearby.BookmarkService = (*Service)(nil)

// Service holds the ordered bookmark list in memory and writes every change
// through to storage.
type Service struct {
	storage nearby.Storage
	logger  *slog.Logger

	mu        sync.RWMutex
	bookmarks []*nearby.Location
}

// NewService creates a Service with an empty list. Call Load to read the
// persisted list.
func NewService(storage nearby.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		storage: storage,
		logger:  logger.With("component", "bookmark"),
	}
}

// Load replaces the in-memory list with the persisted one, or with the
// bundled defaults when nothing has been saved. It returns the number of
// bookmarks loaded.
func (s *Service) Load() int {
	var locs []*nearby.Location
	if !s.storage.Retrieve(StorageName, nearby.StorageApplicationSupport, &locs) {
		locs = nil
		if !s.storage.Retrieve(DefaultsName, nearby.StorageBundle, &locs) {
			locs = nil
		}
	}
	locs = slices.DeleteFunc(locs, func(l *nearby.Location) bool { return l == nil })

	s.mu.Lock()
	s.bookmarks = locs
	s.mu.Unlock()

	return len(locs)
}

// FindBookmarks returns a copy of the list in user order.
func (s *Service) FindBookmarks(ctx context.Context) ([]*nearby.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*nearby.Location, 0, len(s.bookmarks))
	for _, l := range s.bookmarks {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// CreateBookmark appends a location to the list.
func (s *Service) CreateBookmark(ctx context.Context, location *nearby.Location) error {
	if location == nil {
		return nearby.Errorf(nearby.EINVALID, "location required")
	}
	if err := location.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(location.ID) >= 0 {
		return nearby.Errorf(nearby.ECONFLICT, "location %d is already bookmarked", location.ID)
	}
	cp := *location
	s.bookmarks = append(s.bookmarks, &cp)
	s.persist()
	return nil
}

// MoveBookmark moves the bookmark at index from to index to.
func (s *Service) MoveBookmark(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.bookmarks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nearby.Errorf(nearby.EINVALID, "bookmark index out of range: from=%d to=%d count=%d", from, to, n)
	}
	if from == to {
		return nil
	}

	l := s.bookmarks[from]
	s.bookmarks = slices.Delete(s.bookmarks, from, from+1)
	s.bookmarks = slices.Insert(s.bookmarks, to, l)
	s.persist()
	return nil
}

// DeleteBookmark removes the bookmark for a location. The last bookmark
// cannot be removed.
func (s *Service) DeleteBookmark(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nearby.Errorf(nearby.ENOTFOUND, "location %d is not bookmarked", id)
	}
	if len(s.bookmarks) == 1 {
		return nearby.Errorf(nearby.ECONFLICT, "cannot delete the last bookmark")
	}
	s.bookmarks = slices.Delete(s.bookmarks, i, i+1)
	s.persist()
	return nil
}

// Watch reloads the list whenever the file at path is written or replaced.
// The parent directory is watched so atomic renames are seen.
// Watching stops when ctx is done.
func (s *Service) Watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	go s.watchLoop(ctx, w, filepath.Clean(path))
	return nil
}

func (s *Service) watchLoop(ctx context.Context, w *fsnotify.Watcher, path string) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				n := s.Load()
				s.logger.Debug("bookmarks reloaded", "count", n)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Warn("bookmark watch error", "err", err)
		}
	}
}

// persist writes the list through to storage. Must be called with mu held.
func (s *Service) persist() {
	if !s.storage.Store(StorageName, nearby.StorageApplicationSupport, s.bookmarks) {
		s.logger.Warn("bookmarks not saved", "count", len(s.bookmarks))
	}
}

func (s *Service) indexOf(id int) int {
	return slices.IndexFunc(s.bookmarks, func(l *nearby.Location) bool { return l.ID == id })
}
