package mock

import (
	"context"

	"github.com/fwojciec/nearby"
)

var _ nearby.LocationService = (*LocationService)(nil)

// LocationService is a mock implementation of nearby.LocationService.
type LocationService struct {
	FindLocationByIDFn func(ctx context.Context, id int) (*nearby.Location, error)
	FindLocationsFn    func(ctx context.Context, filter nearby.LocationFilter) ([]*nearby.Location, error)
}

func (s *LocationService) FindLocationByID(ctx context.Context, id int) (*nearby.Location, error) {
	return s.FindLocationByIDFn(ctx, id)
}

func (s *LocationService) FindLocations(ctx context.Context, filter nearby.LocationFilter) ([]*nearby.Location, error) {
	return s.FindLocationsFn(ctx, filter)
}
