package ytscan

import (
	"context"
	"time"
)

// Session represents one completed scrape of a channel listing page.
type Session struct {
	ID          string    `json:"id"`
	ChannelURL  string    `json:"channelUrl"`
	ContentHash string    `json:"contentHash"`
	VideoCount  int       `json:"videoCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.ChannelURL == "" {
		return Errorf(EINVALID, "session channel URL required")
	}
	return nil
}

// SessionService represents a service for managing scrape sessions.
type SessionService interface {
	// CreateSession stores a session together with its videos.
	CreateSession(ctx context.Context, session *Session, videos []*Video) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// FindSessions retrieves sessions matching the filter, newest first.
	FindSessions(ctx context.Context, filter SessionFilter) ([]*Session, error)

	// FindVideosBySession retrieves the videos of a session in the order
	// they appeared on the page.
	FindVideosBySession(ctx context.Context, sessionID string) ([]*Video, error)

	// DeleteSession permanently removes a session and its videos.
	// Returns ENOTFOUND if the session does not exist.
	DeleteSession(ctx context.Context, id string) error
}

// SessionFilter represents a filter for FindSessions.
type SessionFilter struct {
	ID         *string `json:"id"`
	ChannelURL *string `json:"channelUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
