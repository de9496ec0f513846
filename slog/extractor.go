package slog

import (
	"log/slog"
	"time"

	"github.com/pkalinowski/ytscan"
)

// Ensure LoggingExtractor implements ytscan.Extractor.
var _ ytscan.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   ytscan.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ytscan.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (videos []*ytscan.Video, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"input_bytes", len(html),
			"videos", len(videos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
