// Package search runs location searches off the caller's goroutine.
// It combines the catalog with the user's bookmarks so that bookmarked
// locations never show up as search results.
package search

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/nearby"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Compile-time interface verification.
var _ nearby.SearchService = (*Service)(nil)

// Service implements nearby.SearchService.
//
// Each search runs on its own goroutine and calls back from there. At most
// Concurrency searches touch the catalog at once; the rest wait on their
// own goroutines. There is no cancellation and no ordering between
// searches: a caller that only wants the latest result must discard stale
// callbacks itself.
type Service struct {
	locations nearby.LocationService
	bookmarks nearby.BookmarkService
	logger    *slog.Logger
	limiter   *rate.Limiter
	sem       *semaphore.Weighted

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithConcurrency bounds the number of searches querying the catalog at
// the same time. Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(int64(n))
		}
	}
}

// WithRateLimit throttles catalog queries to r per second with the given
// burst. Waiting happens on the search goroutine.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(s *Service) {
		s.limiter = rate.NewLimiter(r, burst)
	}
}

// NewService creates a new Service. A nil logger discards log output.
func NewService(locations nearby.LocationService, bookmarks nearby.BookmarkService, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		locations: locations,
		bookmarks: bookmarks,
		logger:    logger.With("component", "search"),
		sem:       semaphore.NewWeighted(int64(runtime.NumCPU())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search looks up locations whose name contains text. Surrounding
// whitespace is ignored. An empty query, or a search issued after Close,
// calls fn(nil) before Search returns. Otherwise fn is called exactly once
// from a background goroutine, with nil when nothing matched or the search
// failed.
func (s *Service) Search(ctx context.Context, text string, fn nearby.SearchFunc) {
	query := strings.TrimSpace(text)
	if query == "" {
		fn(nil)
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		fn(nil)
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	id := uuid.NewString()

	go func() {
		defer s.wg.Done()
		fn(s.search(ctx, id, query))
	}()
}

// Close stops accepting searches and waits for in-flight ones to deliver
// their results.
func (s *Service) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()
	return nil
}

// search runs one query and maps every failure to nil.
func (s *Service) search(ctx context.Context, id, query string) []*nearby.Location {
	logger := s.logger.With("search", id, "query", query)

	if err := s.sem.Acquire(ctx, 1); err != nil {
		logger.Error("search failed", "err", err)
		return nil
	}
	defer s.sem.Release(1)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			logger.Error("search failed", "err", err)
			return nil
		}
	}

	begin := time.Now()

	// Snapshot of the bookmarks at the time the search runs. Bookmarks
	// changed while the query executes are not reflected.
	bookmarks, err := s.bookmarks.FindBookmarks(ctx)
	if err != nil {
		logger.Error("search failed", "err", err)
		return nil
	}

	locations, err := s.locations.FindLocations(ctx, nearby.LocationFilter{
		NameContains: query,
		ExcludeIDs:   nearby.LocationIDs(bookmarks),
	})
	if err != nil {
		logger.Error("search failed", "err", err)
		return nil
	}

	logger.Debug("search completed",
		"excluded", len(bookmarks),
		"count", len(locations),
		"duration", time.Since(begin),
	)

	if len(locations) == 0 {
		return nil
	}
	return locations
}
