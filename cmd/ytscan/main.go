package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkalinowski/ytscan"
	"github.com/pkalinowski/ytscan/fs"
	"github.com/pkalinowski/ytscan/goquery"
	"github.com/pkalinowski/ytscan/rod"
	ytslog "github.com/pkalinowski/ytscan/slog"
	"github.com/pkalinowski/ytscan/sqlite"
	"github.com/pkalinowski/ytscan/zenrows"
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
	// Database and log paths. Set before calling Run().
	DBPath  string
	LogPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SessionService ytscan.SessionService

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		LogPath: defaultLogPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		LogPath: m.LogPath,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ytscan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ytscan --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services off the resolved command, not the raw first argument:
	// kong accepts global flags before the subcommand.
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	// Log records always go to the file; --verbose mirrors them to stderr.
	var mirror io.Writer
	if cli.Verbose {
		mirror = stderr
	}
	logger, logCloser, err := ytslog.NewFileLogger(m.LogPath, mirror)
	if err != nil {
		return fmt.Errorf("failed to open log file at %q: %w", m.LogPath, err)
	}
	m.closers = append(m.closers, logCloser)
	defer m.Close()
	deps.Logger = logger
	deps.FetchTimeout = cli.Timeout

	// Every command except logs touches the database.
	if cmd != "logs" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set YTSCAN_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.SessionService = sqlite.NewSessionService(m.DB)
		deps.Sessions = m.SessionService
	}

	if cmd == "scrape" {
		var fetcher ytscan.Fetcher
		if cli.Browser {
			f, err := rod.NewFetcher(rod.WithWait(cli.Wait))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			if cli.APIKey == "" {
				fmt.Fprintln(stderr, "ZENROWS_API_KEY environment variable not set. Get a key at https://www.zenrows.com, or pass --browser to use a local headless Chrome.")
				return fmt.Errorf("ZENROWS_API_KEY not set")
			}
			opts := []zenrows.Option{zenrows.WithWait(cli.Wait)}
			if !cli.JSRender {
				opts = append(opts, zenrows.WithJSRender(false))
			}
			fetcher = zenrows.NewFetcher(cli.APIKey, opts...)
		}
		m.closers = append(m.closers, fetcher)

		deps.Fetcher = ytslog.NewLoggingFetcher(fetcher, logger)
		deps.Extractor = ytslog.NewLoggingExtractor(goquery.NewExtractor(goquery.WithLogger(logger)), logger)
	}

	if cmd == "export" {
		deps.Exporter = fs.NewExporter(cli.Export.Dir)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("YTSCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ytscan.db"
	}
	dir := filepath.Join(home, ".ytscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ytscan.db")
}

func defaultLogPath() string {
	if path := os.Getenv("YTSCAN_LOG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ytscan.log"
	}
	dir := filepath.Join(home, ".ytscan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ytscan.log")
}
