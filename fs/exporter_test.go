package fs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkalinowski/ytscan"
	"github.com/pkalinowski/ytscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in column order", func(t *testing.T) {
		t.Parallel()

		scraped := time.Date(2024, 1, 31, 15, 45, 0, 0, time.UTC)
		videos := []*ytscan.Video{
			{
				Title:     "First Upload",
				URL:       "https://www.youtube.com/watch?v=one",
				Views:     1100,
				Posted:    "3 days ago",
				ScrapedAt: scraped,
			},
		}

		var buf bytes.Buffer
		require.NoError(t, fs.WriteCSV(&buf, videos))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Title,URL,Views,Posted,Scraped At", lines[0])
		assert.Equal(t, "First Upload,https://www.youtube.com/watch?v=one,1100,3 days ago,2024-01-31 15:45:00", lines[1])
	})

	t.Run("quotes fields containing commas and quotes", func(t *testing.T) {
		t.Parallel()

		videos := []*ytscan.Video{
			{
				Title:     `Cooking, "Fast" Edition`,
				URL:       "https://www.youtube.com/watch?v=q",
				Posted:    "N/A",
				ScrapedAt: time.Now(),
			},
		}

		var buf bytes.Buffer
		require.NoError(t, fs.WriteCSV(&buf, videos))
		assert.Contains(t, buf.String(), `"Cooking, ""Fast"" Edition"`)
	})

	t.Run("handles empty video list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, fs.WriteCSV(&buf, nil))
		assert.Equal(t, "Title,URL,Views,Posted,Scraped At\n", buf.String())
	})
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("writes a timestamped CSV file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir)

		videos := []*ytscan.Video{
			{
				Title:     "First Upload",
				URL:       "https://www.youtube.com/watch?v=one",
				Views:     42,
				Posted:    "1 day ago",
				ScrapedAt: time.Now(),
			},
		}

		path, err := exporter.Export(context.Background(), videos)
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(path))
		base := filepath.Base(path)
		assert.True(t, strings.HasPrefix(base, "youtube_videos_"), "got %q", base)
		assert.True(t, strings.HasSuffix(base, ".csv"), "got %q", base)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "First Upload")
	})

	t.Run("creates the target directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "exports", "nested")
		exporter := fs.NewExporter(dir)

		path, err := exporter.Export(context.Background(), nil)
		require.NoError(t, err)
		assert.FileExists(t, path)
	})
}
