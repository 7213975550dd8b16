package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockSessionService implements domain.SessionService interface for testing
type MockSessionService struct {
	ListForUserFunc  func(ctx context.Context, userID, currentSessionID string) ([]domain.SessionInfo, error)
	RevokeFunc       func(ctx context.Context, userID, sessionID, currentSessionID string) error
	RevokeOthersFunc func(ctx context.Context, userID, currentSessionID string) (int64, error)
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// ListForUser lists the user's sessions with display metadata
func (m *MockSessionService) ListForUser(ctx context.Context, userID, currentSessionID string) ([]domain.SessionInfo, error) {
	if m.ListForUserFunc != nil {
		return m.ListForUserFunc(ctx, userID, currentSessionID)
	}
	// Default behavior: no sessions
	return nil, nil
}

// Revoke terminates one non-current session
func (m *MockSessionService) Revoke(ctx context.Context, userID, sessionID, currentSessionID string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID, sessionID, currentSessionID)
	}
	// Default behavior: success
	return nil
}

// RevokeOthers terminates every session except the current one
func (m *MockSessionService) RevokeOthers(ctx context.Context, userID, currentSessionID string) (int64, error) {
	if m.RevokeOthersFunc != nil {
		return m.RevokeOthersFunc(ctx, userID, currentSessionID)
	}
	// Default behavior: nothing revoked
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.SessionService = (*MockSessionService)(nil)
