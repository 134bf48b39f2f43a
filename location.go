package nearby

import (
	"context"
	"fmt"
)

// Location represents a place in the weather-station catalog.
type Location struct {
	ID          int         `json:"identifier"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String returns the coordinates formatted as "lat,lon".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// Validate returns an error if the location contains invalid fields.
func (l *Location) Validate() error {
	if l.ID <= 0 {
		return Errorf(EINVALID, "location ID must be positive")
	}
	if l.Name == "" {
		return Errorf(EINVALID, "location name required")
	}
	if l.Coordinates.Latitude < -90 || l.Coordinates.Latitude > 90 {
		return Errorf(EINVALID, "location latitude out of range: %v", l.Coordinates.Latitude)
	}
	if l.Coordinates.Longitude < -180 || l.Coordinates.Longitude > 180 {
		return Errorf(EINVALID, "location longitude out of range: %v", l.Coordinates.Longitude)
	}
	return nil
}

// LocationService represents the read-only location catalog.
type LocationService interface {
	// FindLocationByID retrieves a location by ID.
	// Returns ENOTFOUND if location does not exist.
	FindLocationByID(ctx context.Context, id int) (*Location, error)

	// FindLocations retrieves locations whose name contains the filter's
	// pattern, case-insensitively, skipping excluded IDs.
	// When ExcludeIDs is empty results are ordered by name, then country;
	// otherwise by country, then name.
	// An empty pattern matches nothing.
	FindLocations(ctx context.Context, filter LocationFilter) ([]*Location, error)
}

// LocationFilter represents a filter for FindLocations.
type LocationFilter struct {
	NameContains string `json:"nameContains"`
	ExcludeIDs   []int  `json:"excludeIds"`
}

// CatalogInfo describes the loaded catalog.
type CatalogInfo struct {
	Count    int    `json:"count"`
	Checksum string `json:"checksum"`
}
