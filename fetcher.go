package ytscan

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use a rendering proxy API or browser automation to
// handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the rendered HTML for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
