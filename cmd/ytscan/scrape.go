package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pkalinowski/ytscan"
	"github.com/pkalinowski/ytscan/sqlite"
	"golang.org/x/sync/errgroup"
)

// scrapeResult is the outcome of fetching and extracting one channel URL.
type scrapeResult struct {
	url    string
	html   string
	videos []*ytscan.Video
	err    error
}

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls := make([]string, len(c.URLs))
	for i, raw := range c.URLs {
		urls[i] = ytscan.NormalizeChannelURL(raw)
		if urls[i] != raw {
			fmt.Fprintf(deps.Stdout, "Appended /videos to URL: %s\n", urls[i])
		}
	}

	results := make([]scrapeResult, len(urls))

	// Fetch and extract concurrently; failures are collected per URL so one
	// bad channel does not cancel the rest.
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			results[i] = c.scrapeOne(ctx, deps, url)
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for _, res := range results {
		if res.err != nil {
			color.New(color.FgRed).Fprintf(deps.Stderr, "✗ %s: %s\n", res.url, ytscan.ErrorMessage(res.err))
			deps.Logger.Error("scrape failed", "url", res.url, "err", res.err)
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}

		color.New(color.FgGreen).Fprintf(deps.Stdout, "✓ Scraped %d videos from %s\n", len(res.videos), res.url)
		printVideoTable(deps, res.videos)

		if c.NoSave {
			continue
		}

		session := &ytscan.Session{
			ChannelURL:  res.url,
			ContentHash: sqlite.HashContent(res.html),
		}
		if err := deps.Sessions.CreateSession(deps.Ctx, session, res.videos); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving session: %s\n", ytscan.ErrorMessage(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintf(deps.Stdout, "Saved session %s. Run 'ytscan export %s' to write CSV.\n", session.ID, session.ID)
	}

	return firstErr
}

// scrapeOne fetches and extracts a single channel listing.
func (c *ScrapeCmd) scrapeOne(ctx context.Context, deps *Dependencies, url string) scrapeResult {
	fctx, cancel := context.WithTimeout(ctx, deps.FetchTimeout)
	defer cancel()

	html, err := deps.Fetcher.Fetch(fctx, url)
	if err != nil {
		return scrapeResult{url: url, err: err}
	}

	videos, err := deps.Extractor.Extract(html)
	return scrapeResult{url: url, html: html, videos: videos, err: err}
}

// printVideoTable renders the five-column video table.
func printVideoTable(deps *Dependencies, videos []*ytscan.Video) {
	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tVIEWS\tPOSTED\tURL")
	for i, v := range videos {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", i+1, v.Title, v.Views, v.Posted, v.URL)
	}
	w.Flush()
}
