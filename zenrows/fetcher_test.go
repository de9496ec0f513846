package zenrows_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkalinowski/ytscan"
	"github.com/pkalinowski/ytscan/zenrows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and sends rendering parameters", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte("<html>rendered</html>"))
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("test-key", zenrows.WithAPIURL(srv.URL))
		defer f.Close()

		html, err := f.Fetch(context.Background(), "https://www.youtube.com/@channel/videos")
		require.NoError(t, err)
		assert.Equal(t, "<html>rendered</html>", html)

		assert.Equal(t, "test-key", gotQuery["apikey"][0])
		assert.Equal(t, "https://www.youtube.com/@channel/videos", gotQuery["url"][0])
		assert.Equal(t, "true", gotQuery["js_render"][0])
		assert.Equal(t, "5000", gotQuery["wait"][0])
	})

	t.Run("omits rendering parameters when disabled", func(t *testing.T) {
		t.Parallel()

		var gotQuery map[string][]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("test-key",
			zenrows.WithAPIURL(srv.URL),
			zenrows.WithJSRender(false),
		)
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.NotContains(t, gotQuery, "js_render")
		assert.NotContains(t, gotQuery, "wait")
	})

	t.Run("classifies authorization failures", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Invalid API key"}`))
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("bad-key", zenrows.WithAPIURL(srv.URL))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, ytscan.EUNAUTHORIZED, ytscan.ErrorCode(err))
		assert.Contains(t, ytscan.ErrorMessage(err), "Invalid API key")
	})

	t.Run("classifies server errors as unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("test-key", zenrows.WithAPIURL(srv.URL))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, ytscan.EUNAVAILABLE, ytscan.ErrorCode(err))
	})

	t.Run("classifies bad requests as invalid", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("test-key", zenrows.WithAPIURL(srv.URL))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, ytscan.EINVALID, ytscan.ErrorCode(err))
	})

	t.Run("requires an API key", func(t *testing.T) {
		t.Parallel()

		f := zenrows.NewFetcher("")
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, ytscan.EUNAUTHORIZED, ytscan.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		f := zenrows.NewFetcher("test-key", zenrows.WithAPIURL(srv.URL))
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, "https://example.com")
		require.Error(t, err)
	})
}
