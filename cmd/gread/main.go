package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/leovikii/gread"
	"github.com/leovikii/gread/engine"
	"github.com/leovikii/gread/goquery"
	greadhttp "github.com/leovikii/gread/http"
	"github.com/leovikii/gread/rod"
	greadslog "github.com/leovikii/gread/slog"
	"github.com/leovikii/gread/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PreferenceService  gread.PreferenceService
	GalleryStatService gread.GalleryStatService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gread"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gread --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GREAD_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PreferenceService = sqlite.NewPreferenceService(m.DB)
	m.GalleryStatService = sqlite.NewGalleryStatService(m.DB)
	deps.DB = m.DB
	deps.Prefs = m.PreferenceService
	deps.Stats = m.GalleryStatService

	// Wire fetch-side dependencies only for the read command; toggles
	// and info never touch the network.
	if cmd == "read" {
		markers := goquery.DefaultMarkers()
		deps.Adapter = goquery.NewAdapter(markers)

		var fetcher gread.Fetcher
		if cli.Read.Browser {
			browserFetcher, err := rod.NewFetcher(rod.WithWaitSelector(markers.ItemLinks))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = greadhttp.NewFetcher()
		}
		defer fetcher.Close()

		limiter := engine.NewHostLimiter(1.0)
		var resolver gread.Resolver = &engine.Resolver{
			Fetcher: fetcher,
			Images:  goquery.NewImageExtractor(markers),
			Limiter: limiter,
		}

		if cli.Read.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil)).
				With("session", uuid.New().String())
			fetcher = greadslog.NewLoggingFetcher(fetcher, logger)
			resolver = greadslog.NewLoggingResolver(resolver, logger)
		}

		deps.Fetcher = fetcher
		deps.Resolver = resolver
		deps.Limiter = limiter
		deps.Warmer = greadhttp.NewWarmer()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GREAD_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gread.db"
	}
	dir := filepath.Join(home, ".gread")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gread.db")
}
