package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pkalinowski/ytscan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher   ytscan.Fetcher
	Extractor ytscan.Extractor
	Sessions  ytscan.SessionService
	Exporter  ytscan.VideoExporter

	// LogPath is the log file shown and cleared by the logs command.
	LogPath string

	// FetchTimeout bounds each page fetch.
	FetchTimeout time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool          `short:"v" help:"Mirror log records to stderr"`
	Browser  bool          `help:"Render pages with a local headless Chrome instead of the ZenRows API"`
	JSRender bool          `default:"true" negatable:"" help:"Enable JavaScript rendering"`
	Wait     time.Duration `default:"5s" help:"Time to wait for the page to load"`
	Timeout  time.Duration `default:"60s" help:"Fetch timeout per page"`
	APIKey   string        `env:"ZENROWS_API_KEY" help:"ZenRows API key"`

	Scrape   ScrapeCmd   `cmd:"" help:"Scrape channel video listings"`
	Sessions SessionsCmd `cmd:"" help:"List stored scrape sessions"`
	Export   ExportCmd   `cmd:"" help:"Export a stored session as CSV"`
	Logs     LogsCmd     `cmd:"" help:"Show or clear the log file"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Channel URLs to scrape"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	NoSave      bool     `help:"Skip storing the scrape session"`
}

// SessionsCmd is the "sessions" subcommand.
type SessionsCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	SessionID string `arg:"" optional:"" help:"Session ID (defaults to the most recent session)"`
	Dir       string `short:"d" default:"." help:"Directory for the CSV file"`
}

// LogsCmd is the "logs" subcommand.
type LogsCmd struct {
	Lines int  `short:"n" default:"100" help:"Number of trailing lines to show"`
	Clear bool `help:"Truncate the log file"`
}
