package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/nearby"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Text, " ")

	done := make(chan []*nearby.Location, 1)
	deps.Search.Search(deps.Ctx, query, func(locations []*nearby.Location) {
		done <- locations
	})

	var locations []*nearby.Location
	select {
	case locations = <-done:
	case <-deps.Ctx.Done():
		return deps.Ctx.Err()
	}

	if locations == nil {
		fmt.Fprintln(deps.Stdout, "No matching locations.")
		return nil
	}
	printLocations(deps.Stdout, locations)
	return nil
}

// printLocations writes one line per location.
func printLocations(w io.Writer, locations []*nearby.Location) {
	for _, l := range locations {
		fmt.Fprintf(w, "%-9d %s, %s  %s\n", l.ID, l.Name, l.Country, l.Coordinates)
	}
}
