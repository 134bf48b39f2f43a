package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/nearby"
)

// Catalog describes the loaded catalog.
type Catalog interface {
	Info(ctx context.Context) (*nearby.CatalogInfo, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Catalog   Catalog
	Locations nearby.LocationService
	Bookmarks nearby.BookmarkService
	Search    nearby.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CatalogPath string  `name:"catalog" env:"NEARBY_CATALOG" help:"Prebuilt catalog file (default: embedded catalog)"`
	Home        string  `env:"NEARBY_HOME" help:"Directory for bookmarks and other state"`
	Concurrency int     `short:"c" default:"0" help:"Concurrent catalog queries (0 = number of CPUs)"`
	RateLimit   float64 `name:"rate-limit" default:"0" help:"Catalog queries per second (0 = unlimited)"`
	MetricsAddr string  `name:"metrics-addr" env:"NEARBY_METRICS_ADDR" help:"Serve Prometheus metrics on this address during repl"`
	Verbose     bool    `short:"v" help:"Log debug output"`

	Search   SearchCmd   `cmd:"" help:"Search locations by name"`
	Repl     ReplCmd     `cmd:"" help:"Search interactively, one query per line"`
	Bookmark BookmarkCmd `cmd:"" help:"Manage bookmarked locations"`
	Catalog  CatalogCmd  `cmd:"" help:"Inspect or build the location catalog"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Text []string `arg:"" optional:"" help:"Part of a location name"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct{}

// BookmarkCmd groups the bookmark subcommands.
type BookmarkCmd struct {
	List   BookmarkListCmd   `cmd:"" default:"1" help:"List bookmarks in order"`
	Add    BookmarkAddCmd    `cmd:"" help:"Bookmark a location by ID"`
	Move   BookmarkMoveCmd   `cmd:"" help:"Move a bookmark to another position"`
	Delete BookmarkDeleteCmd `cmd:"" help:"Remove a bookmark"`
}

// BookmarkListCmd is the "bookmark list" subcommand.
type BookmarkListCmd struct{}

// BookmarkAddCmd is the "bookmark add" subcommand.
type BookmarkAddCmd struct {
	ID int `arg:"" help:"Location ID"`
}

// BookmarkMoveCmd is the "bookmark move" subcommand. Positions start at 1.
type BookmarkMoveCmd struct {
	From int `arg:"" help:"Current position"`
	To   int `arg:"" help:"New position"`
}

// BookmarkDeleteCmd is the "bookmark delete" subcommand.
type BookmarkDeleteCmd struct {
	ID int `arg:"" help:"Location ID"`
}

// CatalogCmd groups the catalog subcommands.
type CatalogCmd struct {
	Info  CatalogInfoCmd  `cmd:"" help:"Show catalog size and checksum"`
	Build CatalogBuildCmd `cmd:"" help:"Write a catalog file from CSV"`
}

// CatalogInfoCmd is the "catalog info" subcommand.
type CatalogInfoCmd struct{}

// CatalogBuildCmd is the "catalog build" subcommand.
type CatalogBuildCmd struct {
	Out   string `arg:"" type:"path" help:"Catalog file to create"`
	From  string `type:"existingfile" help:"CSV file to read (default: embedded dataset)"`
	Force bool   `short:"f" help:"Replace an existing file"`
}
