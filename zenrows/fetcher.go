// Package zenrows provides a ytscan.Fetcher backed by the ZenRows rendering
// API, which retrieves fully rendered HTML for JavaScript-heavy pages.
package zenrows

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkalinowski/ytscan"
	"golang.org/x/time/rate"
)

// DefaultAPIURL is the ZenRows API endpoint.
const DefaultAPIURL = "https://api.zenrows.com/v1/"

// DefaultTimeout is the default timeout for API requests. Rendering a page
// can take a while, so this is deliberately generous.
const DefaultTimeout = 60 * time.Second

// DefaultWait is the default time the renderer waits for the page to load.
const DefaultWait = 5 * time.Second

// maxErrorBody bounds how much of an error response is echoed in messages.
const maxErrorBody = 500

// Ensure Fetcher implements ytscan.Fetcher at compile time.
var _ ytscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML through the ZenRows API.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client   *http.Client
	apiURL   string
	apiKey   string
	jsRender bool
	wait     time.Duration
	timeout  time.Duration
	limiter  *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithAPIURL overrides the API endpoint. Used in tests.
func WithAPIURL(u string) Option {
	return func(f *Fetcher) {
		f.apiURL = u
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithJSRender enables or disables JavaScript rendering.
// Enabled by default; dynamically loaded listings require it.
func WithJSRender(enabled bool) Option {
	return func(f *Fetcher) {
		f.jsRender = enabled
	}
}

// WithWait sets how long the renderer waits for the page to load.
// Only applies when JavaScript rendering is enabled.
func WithWait(d time.Duration) Option {
	return func(f *Fetcher) {
		f.wait = d
	}
}

// WithRateLimit caps API calls at rps requests per second with no bursting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new ZenRows-backed Fetcher.
func NewFetcher(apiKey string, opts ...Option) *Fetcher {
	f := &Fetcher{
		apiURL:   DefaultAPIURL,
		apiKey:   apiKey,
		jsRender: true,
		wait:     DefaultWait,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the rendered HTML for the target URL through the API.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if f.apiKey == "" {
		return "", ytscan.Errorf(ytscan.EUNAUTHORIZED, "ZenRows API key not set")
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.apiURL, nil)
	if err != nil {
		return "", err
	}

	q := req.URL.Query()
	q.Set("apikey", f.apiKey)
	q.Set("url", target)
	if f.jsRender {
		q.Set("js_render", "true")
		q.Set("wait", strconv.FormatInt(f.wait.Milliseconds(), 10))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", ytscan.Errorf(ytscan.EUNAVAILABLE, "ZenRows request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, errorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. The underlying http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyStatus maps a non-200 API status to an application error.
func classifyStatus(status int, body string) error {
	switch {
	case status == http.StatusUnauthorized:
		return ytscan.Errorf(ytscan.EUNAUTHORIZED, "401 Unauthorized - invalid API key: %s", body)
	case status == http.StatusForbidden:
		return ytscan.Errorf(ytscan.EUNAUTHORIZED, "403 Forbidden - access denied: %s", body)
	case status == http.StatusBadRequest:
		return ytscan.Errorf(ytscan.EINVALID, "400 Bad Request - invalid parameters: %s", body)
	case status >= http.StatusInternalServerError:
		return ytscan.Errorf(ytscan.EUNAVAILABLE, "HTTP %d - ZenRows API issue: %s", status, body)
	default:
		return ytscan.Errorf(ytscan.EINTERNAL, "HTTP %d: %s", status, body)
	}
}

// errorBody reads up to maxErrorBody characters of an error response.
func errorBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
