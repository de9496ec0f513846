// Package fs provides file-based CSV export of video tables.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkalinowski/ytscan"
)

// Header is the fixed CSV column order.
var Header = []string{"Title", "URL", "Views", "Posted", "Scraped At"}

// ScrapedAtFormat is how capture timestamps are rendered in exports.
const ScrapedAtFormat = "2006-01-02 15:04:05"

// filenameFormat produces names like youtube_videos_20240131_154500.csv.
const filenameFormat = "20060102_150405"

// WriteCSV writes the videos as UTF-8 CSV with a header row. Fields
// containing commas or quotes are quoted per encoding/csv.
func WriteCSV(w io.Writer, videos []*ytscan.Video) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, v := range videos {
		record := []string{
			v.Title,
			v.URL,
			strconv.FormatInt(v.Views, 10),
			v.Posted,
			v.ScrapedAt.Format(ScrapedAtFormat),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Ensure Exporter implements ytscan.VideoExporter at compile time.
var _ ytscan.VideoExporter = (*Exporter)(nil)

// Exporter writes video tables as timestamped CSV files in a directory.
type Exporter struct {
	dir string
}

// NewExporter creates a new Exporter that writes to the given directory.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes the videos to a timestamped CSV file and returns its path.
func (e *Exporter) Export(ctx context.Context, videos []*ytscan.Video) (string, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("youtube_videos_%s.csv", time.Now().Format(filenameFormat))
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := WriteCSV(f, videos); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}
