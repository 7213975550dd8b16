package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockGuestRepository implements domain.GuestRepository interface for testing
type MockGuestRepository struct {
	CreateFunc          func(ctx context.Context, guest *domain.Guest) error
	FindByIDAndUserFunc func(ctx context.Context, id, userID string) (*domain.Guest, error)
	ListByUserIDFunc    func(ctx context.Context, userID string) ([]domain.Guest, error)
	UpdateFunc          func(ctx context.Context, guest *domain.Guest) error
	DeleteFunc          func(ctx context.Context, id string) error
}

// NewMockGuestRepository creates a new MockGuestRepository with default behaviors
func NewMockGuestRepository() *MockGuestRepository {
	return &MockGuestRepository{}
}

// Create creates a new guest
func (m *MockGuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, guest)
	}
	// Default behavior: success
	return nil
}

// FindByIDAndUser finds a guest scoped to the managing user
func (m *MockGuestRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Guest, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// ListByUserID lists the user's guests
func (m *MockGuestRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Guest, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	// Default behavior: no guests
	return nil, nil
}

// Update updates an existing guest
func (m *MockGuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, guest)
	}
	// Default behavior: success
	return nil
}

// Delete removes a guest
func (m *MockGuestRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.GuestRepository = (*MockGuestRepository)(nil)
