package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockRoomRepository implements domain.RoomRepository interface for testing
type MockRoomRepository struct {
	CreateFunc           func(ctx context.Context, room *domain.Room) error
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Room, error)
	ListByPropertyIDFunc func(ctx context.Context, propertyID string, status domain.RoomStatus) ([]domain.Room, error)
	UpdateFunc           func(ctx context.Context, room *domain.Room) error
	UpdateStatusFunc     func(ctx context.Context, id string, status domain.RoomStatus) error
	DeleteFunc           func(ctx context.Context, id string) error

	StatusUpdates map[string]domain.RoomStatus
}

// NewMockRoomRepository creates a new MockRoomRepository with default behaviors
func NewMockRoomRepository() *MockRoomRepository {
	return &MockRoomRepository{StatusUpdates: map[string]domain.RoomStatus{}}
}

// Create creates a new room
func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, room)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a room by ID
func (m *MockRoomRepository) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// ListByPropertyID lists rooms of a property, optionally filtered by status
func (m *MockRoomRepository) ListByPropertyID(ctx context.Context, propertyID string, status domain.RoomStatus) ([]domain.Room, error) {
	if m.ListByPropertyIDFunc != nil {
		return m.ListByPropertyIDFunc(ctx, propertyID, status)
	}
	// Default behavior: no rooms
	return nil, nil
}

// Update updates an existing room
func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, room)
	}
	// Default behavior: success
	return nil
}

// UpdateStatus records the status change so tests can assert on it
func (m *MockRoomRepository) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus) error {
	if m.StatusUpdates != nil {
		m.StatusUpdates[id] = status
	}
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	// Default behavior: success
	return nil
}

// Delete removes a room
func (m *MockRoomRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.RoomRepository = (*MockRoomRepository)(nil)
