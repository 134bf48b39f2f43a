package sqlite

import (
	"context"
	"fmt"

	"github.com/fwojciec/nearby"
)

// Loader returns the locations used to populate an in-memory catalog.
type Loader func() ([]*nearby.Location, error)

// OpenCatalog opens the location catalog. With an empty path the catalog
// is built in memory from load; otherwise path must name a catalog file
// created by Import, and it is opened read-only.
//
// Any failure returns an EUNAVAILABLE error. Callers must not continue
// without a catalog.
func OpenCatalog(ctx context.Context, path string, load Loader) (*DB, error) {
	if path != "" {
		db := NewDB(path)
		db.ReadOnly = true
		if err := db.Open(); err != nil {
			return nil, nearby.Errorf(nearby.EUNAVAILABLE, "catalog %q unavailable: %v", path, err)
		}
		return db, nil
	}

	locs, err := load()
	if err != nil {
		return nil, nearby.Errorf(nearby.EUNAVAILABLE, "catalog dataset unavailable: %v", err)
	}

	db := NewDB(":memory:")
	if err := db.Open(); err != nil {
		return nil, nearby.Errorf(nearby.EUNAVAILABLE, "catalog unavailable: %v", err)
	}
	if err := Import(ctx, db, locs); err != nil {
		db.Close()
		return nil, nearby.Errorf(nearby.EUNAVAILABLE, "catalog unavailable: %v", err)
	}

	return db, nil
}

// Import inserts locations into a writable database in one transaction.
// Locations are validated first; a duplicate ID aborts the import.
func Import(ctx context.Context, db *DB, locs []*nearby.Location) error {
	seen := make(map[int]struct{}, len(locs))
	for _, loc := range locs {
		if err := loc.Validate(); err != nil {
			return err
		}
		if _, ok := seen[loc.ID]; ok {
			return nearby.Errorf(nearby.ECONFLICT, "duplicate location ID %d", loc.ID)
		}
		seen[loc.ID] = struct{}{}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (id, name, country, latitude, longitude)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locs {
		if _, err := stmt.ExecContext(ctx, loc.ID, loc.Name, loc.Country,
			loc.Coordinates.Latitude, loc.Coordinates.Longitude); err != nil {
			return fmt.Errorf("failed to insert location %d: %w", loc.ID, err)
		}
	}

	return tx.Commit()
}
