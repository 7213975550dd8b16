package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockPasskeyService implements domain.PasskeyService interface for testing
type MockPasskeyService struct {
	BeginRegistrationFunc  func(ctx context.Context, userID string) ([]byte, string, error)
	FinishRegistrationFunc func(ctx context.Context, ceremonyID, name string, responseJSON []byte) (*domain.Passkey, error)
	BeginLoginFunc         func(ctx context.Context, email string) ([]byte, string, error)
	FinishLoginFunc        func(ctx context.Context, ceremonyID string, responseJSON []byte, client domain.ClientInfo) (*domain.AuthResult, error)
	ListFunc               func(ctx context.Context, userID string) ([]domain.Passkey, error)
	DeleteFunc             func(ctx context.Context, userID, passkeyID string) error
}

// NewMockPasskeyService creates a new MockPasskeyService with default behaviors
func NewMockPasskeyService() *MockPasskeyService {
	return &MockPasskeyService{}
}

// BeginRegistration starts a credential creation ceremony
func (m *MockPasskeyService) BeginRegistration(ctx context.Context, userID string) ([]byte, string, error) {
	if m.BeginRegistrationFunc != nil {
		return m.BeginRegistrationFunc(ctx, userID)
	}
	// Default behavior: empty options with a fixed ceremony id
	return []byte(`{}`), "ceremony_1", nil
}

// FinishRegistration completes a credential creation ceremony
func (m *MockPasskeyService) FinishRegistration(ctx context.Context, ceremonyID, name string, responseJSON []byte) (*domain.Passkey, error) {
	if m.FinishRegistrationFunc != nil {
		return m.FinishRegistrationFunc(ctx, ceremonyID, name, responseJSON)
	}
	// Default behavior: return a stored passkey
	return &domain.Passkey{ID: "passkey_1", Name: name}, nil
}

// BeginLogin starts an assertion ceremony
func (m *MockPasskeyService) BeginLogin(ctx context.Context, email string) ([]byte, string, error) {
	if m.BeginLoginFunc != nil {
		return m.BeginLoginFunc(ctx, email)
	}
	// Default behavior: empty options with a fixed ceremony id
	return []byte(`{}`), "ceremony_1", nil
}

// FinishLogin completes an assertion ceremony and opens a session
func (m *MockPasskeyService) FinishLogin(ctx context.Context, ceremonyID string, responseJSON []byte, client domain.ClientInfo) (*domain.AuthResult, error) {
	if m.FinishLoginFunc != nil {
		return m.FinishLoginFunc(ctx, ceremonyID, responseJSON, client)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User:        &domain.User{ID: "user_1", Role: "user", EmailVerified: true},
		AccessToken: "mock_access_token",
		SessionID:   "session_1",
		ExpiresIn:   900,
	}, nil
}

// List returns the user's registered passkeys
func (m *MockPasskeyService) List(ctx context.Context, userID string) ([]domain.Passkey, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	// Default behavior: no passkeys
	return nil, nil
}

// Delete removes a passkey owned by the user
func (m *MockPasskeyService) Delete(ctx context.Context, userID, passkeyID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, passkeyID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PasskeyService = (*MockPasskeyService)(nil)
