package mock

import "github.com/pkalinowski/ytscan"

var _ ytscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ytscan.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*ytscan.Video, error)
}

func (e *Extractor) Extract(html string) ([]*ytscan.Video, error) {
	return e.ExtractFn(html)
}
