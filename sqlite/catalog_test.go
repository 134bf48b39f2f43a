package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fwojciec/nearby"
	"github.com/fwojciec/nearby/csv"
	"github.com/fwojciec/nearby/dataset"
	"github.com/fwojciec/nearby/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLoader(locs ...*nearby.Location) sqlite.Loader {
	return func() ([]*nearby.Location, error) { return locs, nil }
}

func TestOpenCatalog(t *testing.T) {
	t.Parallel()

	t.Run("builds in-memory catalog from loader", func(t *testing.T) {
		t.Parallel()

		db, err := sqlite.OpenCatalog(context.Background(), "", staticLoader(berlin, bern, paris))
		require.NoError(t, err)
		defer db.Close()

		locs, err := sqlite.NewLocationService(db).FindLocations(context.Background(), nearby.LocationFilter{NameContains: "ber"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Berlin/DE", "Bern/CH"}, names(locs))
	})

	t.Run("opens prebuilt catalog file read-only", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.sqlite")
		build := sqlite.NewDB(path)
		require.NoError(t, build.Open())
		require.NoError(t, sqlite.Import(context.Background(), build, []*nearby.Location{berlin, bern, paris}))
		require.NoError(t, build.Close())

		loaderCalled := false
		db, err := sqlite.OpenCatalog(context.Background(), path, func() ([]*nearby.Location, error) {
			loaderCalled = true
			return nil, nil
		})
		require.NoError(t, err)
		defer db.Close()

		assert.False(t, loaderCalled)
		loc, err := sqlite.NewLocationService(db).FindLocationByID(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Paris", loc.Name)
	})

	t.Run("returns EUNAVAILABLE for missing catalog file", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.OpenCatalog(context.Background(), filepath.Join(t.TempDir(), "missing.sqlite"), staticLoader())

		require.Error(t, err)
		assert.Equal(t, nearby.EUNAVAILABLE, nearby.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE when dataset cannot be loaded", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.OpenCatalog(context.Background(), "", func() ([]*nearby.Location, error) {
			return nil, errors.New("dataset corrupt")
		})

		require.Error(t, err)
		assert.Equal(t, nearby.EUNAVAILABLE, nearby.ErrorCode(err))
		assert.Contains(t, nearby.ErrorMessage(err), "dataset corrupt")
	})

	t.Run("returns EUNAVAILABLE when dataset has duplicate IDs", func(t *testing.T) {
		t.Parallel()

		dup := &nearby.Location{ID: berlin.ID, Name: "Berlin Mitte", Country: "DE"}
		_, err := sqlite.OpenCatalog(context.Background(), "", staticLoader(berlin, dup))

		require.Error(t, err)
		assert.Equal(t, nearby.EUNAVAILABLE, nearby.ErrorCode(err))
	})

	t.Run("serves the embedded dataset", func(t *testing.T) {
		t.Parallel()

		db, err := sqlite.OpenCatalog(context.Background(), "", csv.NewReader(dataset.Locations()).ReadAll)
		require.NoError(t, err)
		defer db.Close()

		locs, err := sqlite.NewLocationService(db).FindLocations(context.Background(), nearby.LocationFilter{NameContains: "berlin"})
		require.NoError(t, err)
		require.NotEmpty(t, locs)
		assert.Equal(t, "Berlin", locs[0].Name)
		assert.Equal(t, "DE", locs[0].Country)
	})
}

func TestImport(t *testing.T) {
	t.Parallel()

	t.Run("inserts all locations", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		err := sqlite.Import(context.Background(), db, []*nearby.Location{berlin, bern, paris})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM locations").Scan(&count))
		assert.Equal(t, 3, count)
	})

	t.Run("rejects duplicate IDs without inserting", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		dup := &nearby.Location{ID: bern.ID, Name: "Bern", Country: "US"}

		err := sqlite.Import(context.Background(), db, []*nearby.Location{berlin, bern, dup})
		require.Error(t, err)
		assert.Equal(t, nearby.ECONFLICT, nearby.ErrorCode(err))

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM locations").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("rejects invalid location", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		err := sqlite.Import(context.Background(), db, []*nearby.Location{{ID: 1}})
		require.Error(t, err)
		assert.Equal(t, nearby.EINVALID, nearby.ErrorCode(err))
	})

	t.Run("rolls back when an ID already exists", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		require.NoError(t, sqlite.Import(context.Background(), db, []*nearby.Location{berlin}))

		err := sqlite.Import(context.Background(), db, []*nearby.Location{bern, berlin})
		require.Error(t, err)

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM locations").Scan(&count))
		assert.Equal(t, 1, count)
	})
}
