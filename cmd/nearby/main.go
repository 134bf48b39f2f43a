package main

import (
	"context"
	"fmt"
	"io"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nearby"
	"github.com/fwojciec/nearby/bookmark"
	"github.com/fwojciec/nearby/csv"
	"github.com/fwojciec/nearby/dataset"
	"github.com/fwojciec/nearby/fs"
	nearbyprom "github.com/fwojciec/nearby/prometheus"
	"github.com/fwojciec/nearby/search"
	nearbyslog "github.com/fwojciec/nearby/slog"
	"github.com/fwojciec/nearby/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for interactive commands. Set before calling Run().
	Stdin io.Reader

	// SQLite catalog used by the location service.
	DB *sqlite.DB

	// Services for end-to-end testing.
	LocationService nearby.LocationService
	BookmarkService *bookmark.Service
	SearchService   *search.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program. In-flight searches finish before the
// catalog is closed.
func (m *Main) Close() error {
	if m.SearchService != nil {
		if err := m.SearchService.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nearby"),
		kong.Description("Find weather-station locations by name."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nearby --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Building a catalog writes a new file and needs nothing else.
	if kongCtx.Command() == "catalog build <out>" {
		return kongCtx.Run(deps)
	}

	// Without a catalog there is nothing to search.
	m.DB, err = sqlite.OpenCatalog(ctx, cli.CatalogPath, loadDataset)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: unset NEARBY_CATALOG to use the embedded catalog")
		return err
	}
	defer m.Close()

	home := fs.NewHome(cli.Home)
	if cli.Home == "" {
		if home, err = fs.DefaultHome(); err != nil {
			return err
		}
	}
	storage := fs.NewStorage(dataset.Bundle, home, logger)

	metrics, err := nearbyprom.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return err
	}

	catalog := sqlite.NewLocationService(m.DB)
	m.LocationService = nearbyslog.NewLoggingLocationService(
		nearbyprom.NewLocationService(catalog, metrics), logger)
	m.BookmarkService = bookmark.NewService(storage, logger)
	m.BookmarkService.Load()

	opts := []search.Option{search.WithConcurrency(cli.Concurrency)}
	if cli.RateLimit > 0 {
		opts = append(opts, search.WithRateLimit(rate.Limit(cli.RateLimit), 1))
	}
	m.SearchService = search.NewService(m.LocationService, m.BookmarkService, logger, opts...)

	deps.Catalog = catalog
	deps.Locations = m.LocationService
	deps.Bookmarks = nearbyslog.NewLoggingBookmarkService(m.BookmarkService, logger)
	deps.Search = m.SearchService

	// The REPL follows bookmark changes made by other processes.
	if kongCtx.Command() == "repl" {
		path, err := storage.Path(bookmark.StorageName, nearby.StorageApplicationSupport)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(home.ApplicationSupport(), 0o755); err != nil {
			return err
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := m.BookmarkService.Watch(watchCtx, path); err != nil {
			logger.Warn("bookmark changes will not be picked up", "err", err)
		}

		if cli.MetricsAddr != "" {
			info, err := catalog.Info(ctx)
			if err != nil {
				return err
			}
			metrics.SetCatalogInfo(info)

			srv := &http.Server{Addr: cli.MetricsAddr, Handler: metricsMux(metrics)}
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server failed", "addr", cli.MetricsAddr, "err", err)
				}
			}()
			defer srv.Shutdown(context.WithoutCancel(ctx))
		}
	}

	return kongCtx.Run(deps)
}

// metricsMux serves metrics under /metrics.
func metricsMux(metrics *nearbyprom.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

// loadDataset decodes the embedded catalog.
func loadDataset() ([]*nearby.Location, error) {
	return csv.NewReader(dataset.Locations()).ReadAll()
}
