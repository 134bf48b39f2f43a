package sqlite

import (
	"strings"

	"github.com/fwojciec/nearby"
)

// locationColumns is the column list scanned by scanLocation.
const locationColumns = "id, name, country, latitude, longitude"

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanLocation reads one row selected with locationColumns.
func scanLocation(s scanner) (*nearby.Location, error) {
	var loc nearby.Location
	if err := s.Scan(&loc.ID, &loc.Name, &loc.Country, &loc.Coordinates.Latitude, &loc.Coordinates.Longitude); err != nil {
		return nil, err
	}
	return &loc, nil
}

// placeholders returns n comma-separated bind parameters.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
