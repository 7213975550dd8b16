package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockAccountRepository implements domain.AccountRepository interface for testing
type MockAccountRepository struct {
	CreateFunc                func(ctx context.Context, account *domain.Account) error
	FindByUserAndProviderFunc func(ctx context.Context, userID, providerID string) (*domain.Account, error)
	UpdatePasswordFunc        func(ctx context.Context, accountID, passwordHash string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new provider account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByUserAndProvider finds an account by owner and provider id
func (m *MockAccountRepository) FindByUserAndProvider(ctx context.Context, userID, providerID string) (*domain.Account, error) {
	if m.FindByUserAndProviderFunc != nil {
		return m.FindByUserAndProviderFunc(ctx, userID, providerID)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// UpdatePassword replaces the stored password hash
func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, accountID, passwordHash)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
