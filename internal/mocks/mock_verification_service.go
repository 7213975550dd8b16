package mocks

import (
	"context"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockVerificationService implements domain.VerificationService interface for testing
type MockVerificationService struct {
	GenerateFunc  func(ctx context.Context, email, userID string) (*domain.VerificationRequest, error)
	VerifyFunc    func(ctx context.Context, email, code, userID string) (bool, error)
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// Generate creates and sends a verification code
func (m *MockVerificationService) Generate(ctx context.Context, email, userID string) (*domain.VerificationRequest, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, email, userID)
	}
	// Default behavior: fixed code
	return &domain.VerificationRequest{
		Identifier: email,
		Code:       "123456",
		UserID:     userID,
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}, nil
}

// Verify checks a submitted code
func (m *MockVerificationService) Verify(ctx context.Context, email, code, userID string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code, userID)
	}
	// Default behavior: accept the fixed code
	return code == "123456", nil
}

// CanResend reports whether a resend is allowed yet
func (m *MockVerificationService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	// Default behavior: allowed
	return true, 0, nil
}

// Compile-time interface compliance verification
var _ domain.VerificationService = (*MockVerificationService)(nil)
