package mocks

import (
	"context"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockSessionRepository implements domain.SessionRepository interface for testing
type MockSessionRepository struct {
	CreateFunc              func(ctx context.Context, session *domain.Session) error
	FindByIDFunc            func(ctx context.Context, sessionID string) (*domain.Session, error)
	ListByUserIDFunc        func(ctx context.Context, userID string) ([]domain.Session, error)
	DeleteFunc              func(ctx context.Context, sessionID string) error
	DeleteByUserIDAndIDFunc func(ctx context.Context, userID, sessionID string) (bool, error)
	DeleteOthersFunc        func(ctx context.Context, userID, keepID string) (int64, error)
	TouchFunc               func(ctx context.Context, sessionID string, at time.Time) error
	DeleteExpiredFunc       func(ctx context.Context) error
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a new session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a session by ID
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// ListByUserID lists the user's live sessions
func (m *MockSessionRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Session, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	// Default behavior: no sessions
	return nil, nil
}

// Delete removes a session
func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// DeleteByUserIDAndID removes one session scoped to its owner
func (m *MockSessionRepository) DeleteByUserIDAndID(ctx context.Context, userID, sessionID string) (bool, error) {
	if m.DeleteByUserIDAndIDFunc != nil {
		return m.DeleteByUserIDAndIDFunc(ctx, userID, sessionID)
	}
	// Default behavior: deleted
	return true, nil
}

// DeleteOthers removes every session of the user except keepID
func (m *MockSessionRepository) DeleteOthers(ctx context.Context, userID, keepID string) (int64, error) {
	if m.DeleteOthersFunc != nil {
		return m.DeleteOthersFunc(ctx, userID, keepID)
	}
	// Default behavior: nothing removed
	return 0, nil
}

// Touch updates the session's updated_at timestamp
func (m *MockSessionRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	if m.TouchFunc != nil {
		return m.TouchFunc(ctx, sessionID, at)
	}
	// Default behavior: success
	return nil
}

// DeleteExpired purges expired session rows
func (m *MockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)
