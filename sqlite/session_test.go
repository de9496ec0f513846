package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkalinowski/ytscan"
	"github.com/pkalinowski/ytscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testVideos() []*ytscan.Video {
	return []*ytscan.Video{
		{
			Title:     "First Upload",
			URL:       "https://www.youtube.com/watch?v=one",
			Views:     1100,
			Posted:    "3 days ago",
			ScrapedAt: time.Now(),
		},
		{
			Title:     "Second Upload",
			URL:       "https://www.youtube.com/watch?v=two",
			Views:     523,
			Posted:    "1 week ago",
			ScrapedAt: time.Now(),
		},
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with generated IDs and count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ytscan.Session{
			ChannelURL:  "https://www.youtube.com/@channel/videos",
			ContentHash: sqlite.HashContent("<html>page</html>"),
		}

		err := svc.CreateSession(ctx, session, testVideos())
		require.NoError(t, err)

		assert.NotEmpty(t, session.ID, "ID should be generated")
		assert.Equal(t, 2, session.VideoCount)
		assert.False(t, session.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("returns error for invalid session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		err := svc.CreateSession(ctx, &ytscan.Session{}, nil)
		require.Error(t, err)
		assert.Equal(t, ytscan.EINVALID, ytscan.ErrorCode(err))
	})

	t.Run("rejects invalid videos", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
		videos := []*ytscan.Video{{Title: "No URL"}}

		err := svc.CreateSession(ctx, session, videos)
		require.Error(t, err)
		assert.Equal(t, ytscan.EINVALID, ytscan.ErrorCode(err))
	})
}

func TestSessionService_FindSessionByID(t *testing.T) {
	t.Parallel()

	t.Run("returns session when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
		require.NoError(t, svc.CreateSession(ctx, session, testVideos()))

		found, err := svc.FindSessionByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
		assert.Equal(t, session.ChannelURL, found.ChannelURL)
		assert.Equal(t, 2, found.VideoCount)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		_, err := svc.FindSessionByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, ytscan.ENOTFOUND, ytscan.ErrorCode(err))
	})
}

func TestSessionService_FindSessions(t *testing.T) {
	t.Parallel()

	t.Run("returns sessions newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
			require.NoError(t, svc.CreateSession(ctx, session, testVideos()))
		}

		sessions, err := svc.FindSessions(ctx, ytscan.SessionFilter{})
		require.NoError(t, err)
		assert.Len(t, sessions, 3)
	})

	t.Run("honors limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
			require.NoError(t, svc.CreateSession(ctx, session, testVideos()))
		}

		sessions, err := svc.FindSessions(ctx, ytscan.SessionFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, sessions, 1)
	})

	t.Run("honors offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
			require.NoError(t, svc.CreateSession(ctx, session, testVideos()))
		}

		sessions, err := svc.FindSessions(ctx, ytscan.SessionFilter{Offset: 1})
		require.NoError(t, err)
		assert.Len(t, sessions, 2)
	})

	t.Run("filters by channel URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		first := &ytscan.Session{ChannelURL: "https://www.youtube.com/@first/videos"}
		require.NoError(t, svc.CreateSession(ctx, first, testVideos()))
		second := &ytscan.Session{ChannelURL: "https://www.youtube.com/@second/videos"}
		require.NoError(t, svc.CreateSession(ctx, second, testVideos()))

		url := "https://www.youtube.com/@second/videos"
		sessions, err := svc.FindSessions(ctx, ytscan.SessionFilter{ChannelURL: &url})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, second.ID, sessions[0].ID)
	})
}

func TestSessionService_FindVideosBySession(t *testing.T) {
	t.Parallel()

	t.Run("returns videos in page order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
		require.NoError(t, svc.CreateSession(ctx, session, testVideos()))

		videos, err := svc.FindVideosBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, "First Upload", videos[0].Title)
		assert.Equal(t, "Second Upload", videos[1].Title)
		assert.Equal(t, int64(1100), videos[0].Views)
		assert.Equal(t, session.ID, videos[0].SessionID)
	})

	t.Run("returns empty for unknown session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		videos, err := svc.FindVideosBySession(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, videos)
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	t.Parallel()

	t.Run("removes session and cascades to videos", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)
		ctx := context.Background()

		session := &ytscan.Session{ChannelURL: "https://www.youtube.com/@c/videos"}
		require.NoError(t, svc.CreateSession(ctx, session, testVideos()))

		require.NoError(t, svc.DeleteSession(ctx, session.ID))

		_, err := svc.FindSessionByID(ctx, session.ID)
		assert.Equal(t, ytscan.ENOTFOUND, ytscan.ErrorCode(err))

		videos, err := svc.FindVideosBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, videos)
	})

	t.Run("returns ENOTFOUND for unknown session", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewSessionService(db)

		err := svc.DeleteSession(context.Background(), "nope")
		assert.Equal(t, ytscan.ENOTFOUND, ytscan.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, sqlite.HashContent("page"), sqlite.HashContent("page"))
	})

	t.Run("differs for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, sqlite.HashContent("a"), sqlite.HashContent("b"))
	})
}
