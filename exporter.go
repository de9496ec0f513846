package ytscan

import "context"

// VideoExporter writes a video table to an external format.
type VideoExporter interface {
	// Export writes the videos and returns the path of the written file.
	Export(ctx context.Context, videos []*Video) (path string, err error)
}
