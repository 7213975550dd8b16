package mocks

import (
	"context"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockBookingRepository implements domain.BookingRepository interface for testing
type MockBookingRepository struct {
	CreateFunc           func(ctx context.Context, booking *domain.Booking) error
	FindByIDFunc         func(ctx context.Context, id string) (*domain.Booking, error)
	ListByPropertyIDFunc func(ctx context.Context, propertyID string) ([]domain.Booking, error)
	ListByUserIDFunc     func(ctx context.Context, userID string) ([]domain.Booking, error)
	UpdateFunc           func(ctx context.Context, booking *domain.Booking) error
	CountOverlappingFunc func(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int64, error)
}

// NewMockBookingRepository creates a new MockBookingRepository with default behaviors
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{}
}

// Create creates a new booking
func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a booking by ID
func (m *MockBookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrResourceNotFound
}

// ListByPropertyID lists bookings of a property
func (m *MockBookingRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]domain.Booking, error) {
	if m.ListByPropertyIDFunc != nil {
		return m.ListByPropertyIDFunc(ctx, propertyID)
	}
	// Default behavior: no bookings
	return nil, nil
}

// ListByUserID lists bookings across the user's properties
func (m *MockBookingRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Booking, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	// Default behavior: no bookings
	return nil, nil
}

// Update updates an existing booking
func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, booking)
	}
	// Default behavior: success
	return nil
}

// CountOverlapping counts bookings colliding with the given date range
func (m *MockBookingRepository) CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
	if m.CountOverlappingFunc != nil {
		return m.CountOverlappingFunc(ctx, roomID, checkIn, checkOut, excludeID)
	}
	// Default behavior: no collisions
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.BookingRepository = (*MockBookingRepository)(nil)
