package csv_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/nearby"
	"github.com/fwojciec/nearby/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadAll(t *testing.T) {
	t.Parallel()

	t.Run("decodes rows in file order", func(t *testing.T) {
		t.Parallel()

		input := "id,name,country,latitude,longitude\n" +
			"2950159,Berlin,DE,52.5244,13.4105\n" +
			"2661552,Bern,CH,46.9481,7.4474\n"

		locs, err := csv.NewReader(strings.NewReader(input)).ReadAll()

		require.NoError(t, err)
		require.Len(t, locs, 2)
		assert.Equal(t, &nearby.Location{
			ID:          2950159,
			Name:        "Berlin",
			Country:     "DE",
			Coordinates: nearby.Coordinates{Latitude: 52.5244, Longitude: 13.4105},
		}, locs[0])
		assert.Equal(t, "Bern", locs[1].Name)
	})

	t.Run("accepts columns in any order", func(t *testing.T) {
		t.Parallel()

		input := "name,longitude,latitude,country,id,population\n" +
			"Paris,2.3488,48.8534,FR,2988507,2138551\n"

		locs, err := csv.NewReader(strings.NewReader(input)).ReadAll()

		require.NoError(t, err)
		require.Len(t, locs, 1)
		assert.Equal(t, 2988507, locs[0].ID)
		assert.Equal(t, "FR", locs[0].Country)
		assert.InDelta(t, 48.8534, locs[0].Coordinates.Latitude, 1e-9)
		assert.InDelta(t, 2.3488, locs[0].Coordinates.Longitude, 1e-9)
	})

	t.Run("keeps quoted names with commas", func(t *testing.T) {
		t.Parallel()

		input := "id,name,country,latitude,longitude\n" +
			"1,\"Washington, D.C.\",US,38.8951,-77.0364\n"

		locs, err := csv.NewReader(strings.NewReader(input)).ReadAll()

		require.NoError(t, err)
		require.Len(t, locs, 1)
		assert.Equal(t, "Washington, D.C.", locs[0].Name)
	})

	t.Run("returns empty result for header-only input", func(t *testing.T) {
		t.Parallel()

		locs, err := csv.NewReader(strings.NewReader("id,name,country,latitude,longitude\n")).ReadAll()

		require.NoError(t, err)
		assert.Empty(t, locs)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := csv.NewReader(strings.NewReader("")).ReadAll()

		require.Error(t, err)
		assert.Equal(t, nearby.EINVALID, nearby.ErrorCode(err))
	})

	t.Run("rejects header without required column", func(t *testing.T) {
		t.Parallel()

		_, err := csv.NewReader(strings.NewReader("id,name,latitude,longitude\n")).ReadAll()

		require.Error(t, err)
		assert.Equal(t, nearby.EINVALID, nearby.ErrorCode(err))
		assert.Contains(t, nearby.ErrorMessage(err), "country")
	})

	t.Run("reports line of malformed id", func(t *testing.T) {
		t.Parallel()

		input := "id,name,country,latitude,longitude\n" +
			"1,Berlin,DE,52.5,13.4\n" +
			"abc,Bern,CH,46.9,7.4\n"

		_, err := csv.NewReader(strings.NewReader(input)).ReadAll()

		require.Error(t, err)
		assert.Equal(t, nearby.EINVALID, nearby.ErrorCode(err))
		assert.Contains(t, nearby.ErrorMessage(err), "line 3")
	})

	t.Run("rejects invalid location", func(t *testing.T) {
		t.Parallel()

		input := "id,name,country,latitude,longitude\n" +
			"1,,DE,52.5,13.4\n"

		_, err := csv.NewReader(strings.NewReader(input)).ReadAll()

		require.Error(t, err)
		assert.Contains(t, nearby.ErrorMessage(err), "name required")
	})
}
