package mock

import (
	"context"

	"github.com/fwojciec/nearby"
)

var _ nearby.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of nearby.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, text string, fn nearby.SearchFunc)
}

func (s *SearchService) Search(ctx context.Context, text string, fn nearby.SearchFunc) {
	s.SearchFn(ctx, text, fn)
}
