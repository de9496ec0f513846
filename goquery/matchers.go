package goquery

import "github.com/PuerkitoBio/goquery"

// ContainerMatcher locates candidate video containers in a parsed document.
// Matchers are evaluated in declared order and the first one that yields at
// least one node wins; later matchers are never evaluated. This keeps a
// single markup dialect per pass instead of mixing heterogeneous node shapes.
type ContainerMatcher struct {
	// Name identifies the matcher in logs.
	Name string

	// Match returns the candidate container nodes, or an empty selection.
	Match func(doc *goquery.Document) *goquery.Selection
}

// SelectorMatcher returns a ContainerMatcher backed by a CSS selector.
func SelectorMatcher(name, selector string) ContainerMatcher {
	return ContainerMatcher{
		Name: name,
		Match: func(doc *goquery.Document) *goquery.Selection {
			return doc.Find(selector)
		},
	}
}

// DefaultContainerMatchers returns the known YouTube listing dialects in
// priority order: the channel grid layout, the rich-item home/videos layout,
// and the older dismissible wrapper.
func DefaultContainerMatchers() []ContainerMatcher {
	return []ContainerMatcher{
		SelectorMatcher("grid", "ytd-grid-video-renderer"),
		SelectorMatcher("rich-item", "ytd-rich-item-renderer"),
		SelectorMatcher("dismissible", "div#dismissible"),
	}
}

// titleSelectors are tried in order against each container. For each match
// the explicit title attribute is preferred over visible text; the first
// selector producing a non-empty value wins.
var titleSelectors = []string{
	"#video-title",
	"a#video-title-link",
	"a[title]",
	"h3 a",
	"yt-formatted-string#video-title",
}

// urlSelector matches the anchor carrying the video link.
const urlSelector = "a#video-title-link, a#video-title"

// metadataSelectors locate the span group holding view count and recency.
var metadataSelectors = []string{
	"#metadata-line span",
	"div#metadata-line span",
	"ytd-video-meta-block span",
}
