package services

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// SessionServiceImpl implements domain.SessionService. The caller's
// current session id always comes from its token claims, so the current
// flag is computed per request and never stored.
type SessionServiceImpl struct {
	sessionRepo domain.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo domain.SessionRepository) domain.SessionService {
	return &SessionServiceImpl{sessionRepo: sessionRepo}
}

// ListForUser implements domain.SessionService. At most one entry is
// flagged current; zero when the caller's session is absent from the
// list.
func (s *SessionServiceImpl) ListForUser(ctx context.Context, userID, currentSessionID string) ([]domain.SessionInfo, error) {
	sessions, err := s.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		infos = append(infos, domain.SessionInfo{
			Session:     session,
			DeviceName:  DeviceNameFromUA(session.UserAgent),
			BrowserName: BrowserNameFromUA(session.UserAgent),
			IsCurrent:   session.ID == currentSessionID,
		})
	}
	return infos, nil
}

// Revoke implements domain.SessionService. Revoking the caller's own
// session is rejected; that path is logout, which also drops the token.
func (s *SessionServiceImpl) Revoke(ctx context.Context, userID, sessionID, currentSessionID string) error {
	if sessionID == currentSessionID {
		return domain.ErrSessionCurrent
	}

	deleted, err := s.sessionRepo.DeleteByUserIDAndID(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSessionNotFound
	}
	return nil
}

// RevokeOthers implements domain.SessionService
func (s *SessionServiceImpl) RevokeOthers(ctx context.Context, userID, currentSessionID string) (int64, error) {
	return s.sessionRepo.DeleteOthers(ctx, userID, currentSessionID)
}
