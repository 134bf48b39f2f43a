package main

import (
	"fmt"

	"github.com/fwojciec/nearby"
)

// Run executes the bookmark list command.
func (c *BookmarkListCmd) Run(deps *Dependencies) error {
	bookmarks, err := deps.Bookmarks.FindBookmarks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	if len(bookmarks) == 0 {
		fmt.Fprintln(deps.Stdout, "No bookmarks. Use 'nearby bookmark add' to create one.")
		return nil
	}

	for i, l := range bookmarks {
		fmt.Fprintf(deps.Stdout, "%2d. %-9d %s, %s\n", i+1, l.ID, l.Name, l.Country)
	}
	return nil
}

// Run executes the bookmark add command.
func (c *BookmarkAddCmd) Run(deps *Dependencies) error {
	location, err := deps.Locations.FindLocationByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	if err := deps.Bookmarks.CreateBookmark(deps.Ctx, location); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Bookmarked %s, %s\n", location.Name, location.Country)
	return nil
}

// Run executes the bookmark move command.
func (c *BookmarkMoveCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.MoveBookmark(deps.Ctx, c.From-1, c.To-1); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Moved bookmark %d to position %d\n", c.From, c.To)
	return nil
}

// Run executes the bookmark delete command.
func (c *BookmarkDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Bookmarks.DeleteBookmark(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted bookmark %d\n", c.ID)
	return nil
}
