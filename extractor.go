package ytscan

// Extractor extracts video records from a channel listing page.
type Extractor interface {
	// Extract processes raw HTML and returns the accepted video records in
	// document order. It never returns an empty, nil-error result: when the
	// page yields nothing the error carries ENOCONTAINERS (no recognizable
	// listing containers) or ENORECORDS (containers found but none produced
	// an acceptable record).
	Extract(html string) ([]*Video, error)
}
