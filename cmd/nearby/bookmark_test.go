package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/nearby"
	main "github.com/fwojciec/nearby/cmd/nearby"
	"github.com/fwojciec/nearby/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists bookmarks with positions", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Bookmarks: &mock.BookmarkService{
				FindBookmarksFn: func(_ context.Context) ([]*nearby.Location, error) {
					return []*nearby.Location{bern, berlin}, nil
				},
			},
		}

		require.NoError(t, (&main.BookmarkListCmd{}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, " 1. 2661552")
		assert.Contains(t, output, " 2. 2950159")
		assert.Contains(t, output, "Berlin, DE")
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Bookmarks: &mock.BookmarkService{
				FindBookmarksFn: func(_ context.Context) ([]*nearby.Location, error) {
					return nil, nil
				},
			},
		}

		require.NoError(t, (&main.BookmarkListCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "No bookmarks")
	})
}

func TestBookmarkAddCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("bookmarks the catalog location", func(t *testing.T) {
		t.Parallel()

		var created *nearby.Location
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Locations: &mock.LocationService{
				FindLocationByIDFn: func(_ context.Context, id int) (*nearby.Location, error) {
					assert.Equal(t, bern.ID, id)
					return bern, nil
				},
			},
			Bookmarks: &mock.BookmarkService{
				CreateBookmarkFn: func(_ context.Context, l *nearby.Location) error {
					created = l
					return nil
				},
			},
		}

		require.NoError(t, (&main.BookmarkAddCmd{ID: bern.ID}).Run(deps))
		assert.Equal(t, bern, created)
		assert.Contains(t, stdout.String(), "Bookmarked Bern, CH")
	})

	t.Run("reports unknown location", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Locations: &mock.LocationService{
				FindLocationByIDFn: func(_ context.Context, id int) (*nearby.Location, error) {
					return nil, nearby.Errorf(nearby.ENOTFOUND, "location %d not found", id)
				},
			},
		}

		err := (&main.BookmarkAddCmd{ID: 42}).Run(deps)
		assert.Equal(t, nearby.ENOTFOUND, nearby.ErrorCode(err))
		assert.Contains(t, stderr.String(), "location 42 not found")
	})

	t.Run("reports duplicate bookmark", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Locations: &mock.LocationService{
				FindLocationByIDFn: func(_ context.Context, _ int) (*nearby.Location, error) {
					return bern, nil
				},
			},
			Bookmarks: &mock.BookmarkService{
				CreateBookmarkFn: func(_ context.Context, l *nearby.Location) error {
					return nearby.Errorf(nearby.ECONFLICT, "location %d is already bookmarked", l.ID)
				},
			},
		}

		err := (&main.BookmarkAddCmd{ID: bern.ID}).Run(deps)
		assert.Equal(t, nearby.ECONFLICT, nearby.ErrorCode(err))
		assert.Contains(t, stderr.String(), "already bookmarked")
	})
}

func TestBookmarkMoveCmd_Run(t *testing.T) {
	t.Parallel()

	var from, to int
	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
		Bookmarks: &mock.BookmarkService{
			MoveBookmarkFn: func(_ context.Context, f, t int) error {
				from, to = f, t
				return nil
			},
		},
	}

	require.NoError(t, (&main.BookmarkMoveCmd{From: 3, To: 1}).Run(deps))
	assert.Equal(t, 2, from)
	assert.Equal(t, 0, to)
	assert.Contains(t, stdout.String(), "Moved bookmark 3 to position 1")
}

func TestBookmarkDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes bookmark", func(t *testing.T) {
		t.Parallel()

		var deleted int
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Bookmarks: &mock.BookmarkService{
				DeleteBookmarkFn: func(_ context.Context, id int) error {
					deleted = id
					return nil
				},
			},
		}

		require.NoError(t, (&main.BookmarkDeleteCmd{ID: bern.ID}).Run(deps))
		assert.Equal(t, bern.ID, deleted)
		assert.Contains(t, stdout.String(), "Deleted bookmark 2661552")
	})

	t.Run("reports refusal to delete the last bookmark", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Bookmarks: &mock.BookmarkService{
				DeleteBookmarkFn: func(_ context.Context, _ int) error {
					return nearby.Errorf(nearby.ECONFLICT, "cannot delete the last bookmark")
				},
			},
		}

		err := (&main.BookmarkDeleteCmd{ID: bern.ID}).Run(deps)
		assert.Equal(t, nearby.ECONFLICT, nearby.ErrorCode(err))
		assert.Contains(t, stderr.String(), "cannot delete the last bookmark")
	})
}
