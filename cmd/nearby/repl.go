package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/nearby"
)

// Run executes the repl command. Each input line starts a new search;
// results of a search are dropped once a newer line has been read.
func (c *ReplCmd) Run(deps *Dependencies) error {
	var (
		mu     sync.Mutex
		latest int
		wg     sync.WaitGroup
	)

	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fmt.Fprintln(deps.Stderr, "Type part of a location name. Ctrl-D exits.")

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())

		mu.Lock()
		latest++
		seq := latest
		mu.Unlock()

		wg.Add(1)
		deps.Search.Search(deps.Ctx, query, func(locations []*nearby.Location) {
			defer wg.Done()

			mu.Lock()
			defer mu.Unlock()

			if seq != latest {
				logger.Debug("discarding stale results", "query", query)
				return
			}
			if query == "" {
				return
			}
			fmt.Fprintf(deps.Stdout, "> %s\n", query)
			if locations == nil {
				fmt.Fprintln(deps.Stdout, "No matching locations.")
				return
			}
			printLocations(deps.Stdout, locations)
		})
	}

	wg.Wait()
	return scanner.Err()
}
