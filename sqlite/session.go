package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pkalinowski/ytscan"
)

// Compile-time interface verification.
var _ ytscan.SessionService = (*SessionService)(nil)

// SessionService implements ytscan.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// HashContent computes the xxHash of content and returns it as a hex string.
// The scrape command stores the hash of the raw page so identical fetches
// are recognizable when reviewing session history.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateSession stores a session and its videos atomically.
func (s *SessionService) CreateSession(ctx context.Context, session *ytscan.Session, videos []*ytscan.Video) error {
	if err := session.Validate(); err != nil {
		return err
	}
	for _, v := range videos {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	session.ID = uuid.New().String()
	session.CreatedAt = time.Now().UTC()
	session.VideoCount = len(videos)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, channel_url, content_hash, video_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, session.ID, session.ChannelURL, session.ContentHash, session.VideoCount,
		session.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, v := range videos {
		v.ID = uuid.New().String()
		v.SessionID = session.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO videos (id, session_id, title, url, views, posted, position, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, v.ID, v.SessionID, v.Title, v.URL, v.Views, v.Posted, i,
			v.ScrapedAt.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*ytscan.Session, error) {
	var session ytscan.Session
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, channel_url, content_hash, video_count, created_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &session.ChannelURL, &session.ContentHash,
		&session.VideoCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ytscan.Errorf(ytscan.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	session.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &session, nil
}

// FindSessions retrieves sessions matching the filter, newest first.
func (s *SessionService) FindSessions(ctx context.Context, filter ytscan.SessionFilter) ([]*ytscan.Session, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, channel_url, content_hash, video_count, created_at FROM sessions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ChannelURL != nil {
		query.WriteString(" AND channel_url = ?")
		args = append(args, *filter.ChannelURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET; -1 means unbounded.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*ytscan.Session
	for rows.Next() {
		var session ytscan.Session
		var createdAt string

		if err := rows.Scan(&session.ID, &session.ChannelURL, &session.ContentHash,
			&session.VideoCount, &createdAt); err != nil {
			return nil, err
		}

		session.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}

// FindVideosBySession retrieves a session's videos in page order.
func (s *SessionService) FindVideosBySession(ctx context.Context, sessionID string) ([]*ytscan.Video, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, title, url, views, posted, scraped_at
		FROM videos
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []*ytscan.Video
	for rows.Next() {
		var v ytscan.Video
		var scrapedAt string

		if err := rows.Scan(&v.ID, &v.SessionID, &v.Title, &v.URL, &v.Views,
			&v.Posted, &scrapedAt); err != nil {
			return nil, err
		}

		v.ScrapedAt, err = time.Parse(time.RFC3339, scrapedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse scraped_at: %w", err)
		}

		videos = append(videos, &v)
	}

	return videos, rows.Err()
}

// DeleteSession permanently removes a session and its videos.
func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ytscan.Errorf(ytscan.ENOTFOUND, "session not found")
	}

	return nil
}
