package mock

import (
	"context"

	"github.com/pkalinowski/ytscan"
)

var _ ytscan.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of ytscan.SessionService.
type SessionService struct {
	CreateSessionFn       func(ctx context.Context, session *ytscan.Session, videos []*ytscan.Video) error
	FindSessionByIDFn     func(ctx context.Context, id string) (*ytscan.Session, error)
	FindSessionsFn        func(ctx context.Context, filter ytscan.SessionFilter) ([]*ytscan.Session, error)
	FindVideosBySessionFn func(ctx context.Context, sessionID string) ([]*ytscan.Video, error)
	DeleteSessionFn       func(ctx context.Context, id string) error
}

func (s *SessionService) CreateSession(ctx context.Context, session *ytscan.Session, videos []*ytscan.Video) error {
	return s.CreateSessionFn(ctx, session, videos)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*ytscan.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) FindSessions(ctx context.Context, filter ytscan.SessionFilter) ([]*ytscan.Session, error) {
	return s.FindSessionsFn(ctx, filter)
}

func (s *SessionService) FindVideosBySession(ctx context.Context, sessionID string) ([]*ytscan.Video, error) {
	return s.FindVideosBySessionFn(ctx, sessionID)
}

func (s *SessionService) DeleteSession(ctx context.Context, id string) error {
	return s.DeleteSessionFn(ctx, id)
}
