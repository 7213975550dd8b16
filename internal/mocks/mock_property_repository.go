package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockPropertyRepository implements domain.PropertyRepository interface for testing
type MockPropertyRepository struct {
	CreateFunc          func(ctx context.Context, property *domain.Property) error
	FindByIDAndUserFunc func(ctx context.Context, id, userID string) (*domain.Property, error)
	ListByUserIDFunc    func(ctx context.Context, userID string) ([]domain.Property, error)
	UpdateFunc          func(ctx context.Context, property *domain.Property) error
	DeleteFunc          func(ctx context.Context, id string) error
}

// NewMockPropertyRepository creates a new MockPropertyRepository with default behaviors
func NewMockPropertyRepository() *MockPropertyRepository {
	return &MockPropertyRepository{}
}

// Create creates a new property
func (m *MockPropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, property)
	}
	// Default behavior: success
	return nil
}

// FindByIDAndUser finds a property scoped to its owner
func (m *MockPropertyRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Property, error) {
	if m.FindByIDAndUserFunc != nil {
		return m.FindByIDAndUserFunc(ctx, id, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// ListByUserID lists the user's properties
func (m *MockPropertyRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Property, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	// Default behavior: no properties
	return nil, nil
}

// Update updates an existing property
func (m *MockPropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, property)
	}
	// Default behavior: success
	return nil
}

// Delete removes a property
func (m *MockPropertyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PropertyRepository = (*MockPropertyRepository)(nil)
