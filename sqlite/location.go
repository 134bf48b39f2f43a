package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nearby"
)

// Compile-time interface verification.
var _ nearby.LocationService = (*LocationService)(nil)

// LocationService implements nearby.LocationService using SQLite.
type LocationService struct {
	db *DB
}

// NewLocationService creates a new LocationService.
func NewLocationService(db *DB) *LocationService {
	return &LocationService{db: db}
}

// FindLocationByID retrieves a location by ID.
func (s *LocationService) FindLocationByID(ctx context.Context, id int) (*nearby.Location, error) {
	loc, err := scanLocation(s.db.QueryRowContext(ctx,
		"SELECT "+locationColumns+" FROM locations WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nearby.Errorf(nearby.ENOTFOUND, "location %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// FindLocations retrieves locations whose name contains the filter pattern.
// The pattern and every excluded ID are bound as parameters.
func (s *LocationService) FindLocations(ctx context.Context, filter nearby.LocationFilter) ([]*nearby.Location, error) {
	locations := []*nearby.Location{}
	if filter.NameContains == "" {
		return locations, nil
	}

	var query strings.Builder
	args := []any{filter.NameContains}

	query.WriteString("SELECT " + locationColumns + " FROM locations")
	query.WriteString(" WHERE instr(lower(name), lower(?)) > 0")

	// Exclusions switch the ordering to country first.
	if len(filter.ExcludeIDs) > 0 {
		query.WriteString(" AND id NOT IN (")
		query.WriteString(placeholders(len(filter.ExcludeIDs)))
		query.WriteString(")")
		for _, id := range filter.ExcludeIDs {
			args = append(args, id)
		}
		query.WriteString(" ORDER BY country, name, id")
	} else {
		query.WriteString(" ORDER BY name, country, id")
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, rows.Err()
}

// Info returns the number of catalog rows and a fingerprint of their
// content. The fingerprint changes whenever any row changes.
func (s *LocationService) Info(ctx context.Context) (*nearby.CatalogInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+locationColumns+" FROM locations ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	h := xxhash.New()
	var count int
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(h, "%d\t%s\t%s\t%g\t%g\n", loc.ID, loc.Name, loc.Country, loc.Coordinates.Latitude, loc.Coordinates.Longitude)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &nearby.CatalogInfo{
		Count:    count,
		Checksum: fmt.Sprintf("%016x", h.Sum64()),
	}, nil
}
