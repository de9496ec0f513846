package mock

import (
	"context"

	"github.com/pkalinowski/ytscan"
)

var _ ytscan.VideoExporter = (*VideoExporter)(nil)

// VideoExporter is a mock implementation of ytscan.VideoExporter.
type VideoExporter struct {
	ExportFn func(ctx context.Context, videos []*ytscan.Video) (string, error)
}

func (e *VideoExporter) Export(ctx context.Context, videos []*ytscan.Video) (string, error) {
	return e.ExportFn(ctx, videos)
}
