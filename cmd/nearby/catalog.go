package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/nearby"
	"github.com/fwojciec/nearby/csv"
	"github.com/fwojciec/nearby/dataset"
	"github.com/fwojciec/nearby/sqlite"
)

// Run executes the catalog info command.
func (c *CatalogInfoCmd) Run(deps *Dependencies) error {
	info, err := deps.Catalog.Info(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "locations: %d\nchecksum:  %s\n", info.Count, info.Checksum)
	return nil
}

// Run executes the catalog build command.
func (c *CatalogBuildCmd) Run(deps *Dependencies) error {
	if _, err := os.Stat(c.Out); err == nil {
		if !c.Force {
			fmt.Fprintf(deps.Stderr, "error: %s already exists. Use --force to replace it.\n", c.Out)
			return nearby.Errorf(nearby.ECONFLICT, "catalog %q already exists", c.Out)
		}
		if err := os.Remove(c.Out); err != nil {
			return err
		}
	}

	var src io.Reader = dataset.Locations()
	if c.From != "" {
		f, err := os.Open(c.From)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	locations, err := csv.NewReader(src).ReadAll()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		return err
	}

	db := sqlite.NewDB(c.Out)
	if err := db.Open(); err != nil {
		return fmt.Errorf("failed to create catalog at %q: %w", c.Out, err)
	}
	defer db.Close()

	if err := sqlite.Import(deps.Ctx, db, locations); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nearby.ErrorMessage(err))
		_ = db.Close()
		_ = os.Remove(c.Out)
		return err
	}

	info, err := sqlite.NewLocationService(db).Info(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d locations to %s (checksum %s)\n", info.Count, c.Out, info.Checksum)
	return nil
}
