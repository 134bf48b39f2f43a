// Package slog provides logging decorators for nearby services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nearby"
)

// Ensure LoggingLocationService implements nearby.LocationService.
var _ nearby.LocationService = (*LoggingLocationService)(nil)

// LoggingLocationService wraps a LocationService with debug logging.
type LoggingLocationService struct {
	next   nearby.LocationService
	logger *slog.Logger
}

// NewLoggingLocationService creates a new LoggingLocationService.
func NewLoggingLocationService(next nearby.LocationService, logger *slog.Logger) *LoggingLocationService {
	return &LoggingLocationService{next: next, logger: logger}
}

// FindLocationByID delegates to the wrapped service and logs the lookup.
func (s *LoggingLocationService) FindLocationByID(ctx context.Context, id int) (loc *nearby.Location, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("location lookup",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLocationByID(ctx, id)
}

// FindLocations delegates to the wrapped service and logs the query.
func (s *LoggingLocationService) FindLocations(ctx context.Context, filter nearby.LocationFilter) (locs []*nearby.Location, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("location query",
			"pattern", filter.NameContains,
			"excluded", len(filter.ExcludeIDs),
			"count", len(locs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindLocations(ctx, filter)
}
