package mock

import "github.com/fwojciec/nearby"

var _ nearby.Storage = (*Storage)(nil)

// Storage is a mock implementation of nearby.Storage.
type Storage struct {
	StoreFn    func(name string, loc nearby.StorageLocation, v any) bool
	RetrieveFn func(name string, loc nearby.StorageLocation, v any) bool
}

func (s *Storage) Store(name string, loc nearby.StorageLocation, v any) bool {
	return s.StoreFn(name, loc, v)
}

func (s *Storage) Retrieve(name string, loc nearby.StorageLocation, v any) bool {
	return s.RetrieveFn(name, loc, v)
}
