package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, name, email, password string) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error)
	VerifyEmailFunc    func(ctx context.Context, email, code string) error
	LogoutFunc         func(ctx context.Context, sessionID string) error
	GetUserProfileFunc func(ctx context.Context, userID string) (*domain.User, error)
	ChangePasswordFunc func(ctx context.Context, userID, oldPassword, newPassword string) error
	ResetPasswordFunc  func(ctx context.Context, email, code, newPassword string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	// Default behavior: return an unverified user
	return &domain.User{ID: "user_1", Name: name, Email: email, Role: "user"}, nil
}

// Login authenticates with email and password
func (m *MockAuthService) Login(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	// Default behavior: successful login
	return &domain.AuthResult{
		User:        &domain.User{ID: "user_1", Email: email, Role: "user", EmailVerified: true},
		AccessToken: "mock_access_token",
		SessionID:   "session_1",
		ExpiresIn:   900,
	}, nil
}

// VerifyEmail confirms an emailed verification code
func (m *MockAuthService) VerifyEmail(ctx context.Context, email, code string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, code)
	}
	// Default behavior: success
	return nil
}

// Logout terminates the caller's session
func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	// Default behavior: success
	return nil
}

// GetUserProfile fetches the user's profile
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// ChangePassword replaces the user's credential password
func (m *MockAuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, oldPassword, newPassword)
	}
	// Default behavior: success
	return nil
}

// ResetPassword replaces the password after the emailed code verifies
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
