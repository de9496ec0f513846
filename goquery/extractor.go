// Package goquery implements video listing extraction using CSS selectors.
// It tolerates the known markup dialects of YouTube channel pages through
// prioritized matcher chains with first-match-wins semantics.
package goquery

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkalinowski/ytscan"
)

// Ensure Extractor implements ytscan.Extractor at compile time.
var _ ytscan.Extractor = (*Extractor)(nil)

// Extractor extracts video records from channel listing HTML.
// The zero concurrency caveat of goquery does not apply here: each Extract
// call parses its own document, so concurrent calls are safe.
type Extractor struct {
	containers []ContainerMatcher
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContainerMatchers replaces the container matcher chain.
// Matchers are evaluated in the given order with first-match-wins semantics.
func WithContainerMatchers(matchers ...ContainerMatcher) Option {
	return func(e *Extractor) {
		e.containers = matchers
	}
}

// WithLogger sets the logger used for per-container diagnostics.
// Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor with the default matcher chain.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		containers: DefaultContainerMatchers(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the accepted video records in
// document order. A failure to locate any containers returns ENOCONTAINERS;
// containers that yield zero acceptable records return ENORECORDS. Faults in
// a single container are logged and skipped, never aborting the batch.
func (e *Extractor) Extract(html string) ([]*ytscan.Video, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ytscan.Errorf(ytscan.EINVALID, "failed to parse HTML: %v", err)
	}

	containers, matcher := e.locateContainers(doc)
	if containers == nil {
		return nil, ytscan.Errorf(ytscan.ENOCONTAINERS,
			"no video elements found; page structure may have changed or content didn't finish loading")
	}
	e.logger.Debug("located video containers", "matcher", matcher, "count", containers.Length())

	scrapedAt := time.Now()
	var videos []*ytscan.Video
	containers.Each(func(i int, sel *goquery.Selection) {
		video, err := e.extractVideo(sel, scrapedAt)
		if err != nil {
			e.logger.Warn("failed to parse video element", "index", i+1, "err", err)
			return
		}
		if err := video.Validate(); err != nil {
			e.logger.Debug("dropping incomplete video element", "index", i+1, "err", err)
			return
		}
		videos = append(videos, video)
	})

	if len(videos) == 0 {
		return nil, ytscan.Errorf(ytscan.ENORECORDS,
			"no videos were successfully parsed; check if the page loaded correctly")
	}

	return videos, nil
}

// locateContainers evaluates the matcher chain in order and returns the
// result of the first matcher yielding at least one node, along with the
// matcher's name. Returns nil when every matcher comes up empty.
func (e *Extractor) locateContainers(doc *goquery.Document) (*goquery.Selection, string) {
	for _, m := range e.containers {
		if sel := m.Match(doc); sel != nil && sel.Length() > 0 {
			return sel, m.Name
		}
	}
	return nil, ""
}

// extractVideo extracts a single container's fields. The recover guard keeps
// a malformed container from taking down the rest of the batch.
func (e *Extractor) extractVideo(sel *goquery.Selection, scrapedAt time.Time) (video *ytscan.Video, err error) {
	defer func() {
		if r := recover(); r != nil {
			video = nil
			err = ytscan.Errorf(ytscan.EINTERNAL, "container extraction panicked: %v", r)
		}
	}()

	views, posted := e.extractMetadata(sel)

	return &ytscan.Video{
		Title:     extractTitle(sel),
		URL:       extractURL(sel),
		Views:     views,
		Posted:    posted,
		ScrapedAt: scrapedAt,
	}, nil
}

// extractTitle tries the title selector chain in order, preferring the
// explicit title attribute over visible text. A selector that matches a node
// but produces only empty values does not stop the chain.
func extractTitle(sel *goquery.Selection) string {
	for _, selector := range titleSelectors {
		el := sel.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		title, _ := el.Attr("title")
		if title == "" {
			title = strings.TrimSpace(el.Text())
		}
		if title != "" {
			return title
		}
	}
	return ""
}

// extractURL returns the video's absolute URL. Relative hrefs are prefixed
// with the platform origin; absolute hrefs pass through verbatim.
func extractURL(sel *goquery.Selection) string {
	href, ok := sel.Find(urlSelector).First().Attr("href")
	if !ok || href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return ytscan.Origin + href
	}
	return href
}

// extractMetadata walks the metadata selector chain. A matcher yielding two
// or more spans sets both the view count and the posted label and stops the
// search. A matcher yielding exactly one span sets the view count only and
// keeps searching, so a later matcher that finds both spans overrides it.
func (e *Extractor) extractMetadata(sel *goquery.Selection) (int64, string) {
	var views int64
	posted := ytscan.PostedNotAvailable

	for _, selector := range metadataSelectors {
		spans := sel.Find(selector)
		switch {
		case spans.Length() >= 2:
			views = e.parseViews(spans.Eq(0).Text())
			posted = strings.TrimSpace(spans.Eq(1).Text())
			return views, posted
		case spans.Length() == 1:
			views = e.parseViews(spans.Eq(0).Text())
		}
	}

	return views, posted
}

// parseViews normalizes a view count string, recovering to zero on failure.
func (e *Extractor) parseViews(text string) int64 {
	text = strings.TrimSpace(text)
	views, err := ytscan.ParseViewCount(text)
	if err != nil {
		e.logger.Warn("could not convert view count", "text", text, "err", err)
		return 0
	}
	return views
}
