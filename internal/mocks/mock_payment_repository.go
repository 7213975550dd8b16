package mocks

import (
	"context"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// MockPaymentRepository implements domain.PaymentRepository interface for testing
type MockPaymentRepository struct {
	CreateFunc                  func(ctx context.Context, payment *domain.Payment) error
	ListByBookingIDFunc         func(ctx context.Context, bookingID string) ([]domain.Payment, error)
	SumCompletedByBookingIDFunc func(ctx context.Context, bookingID string) (int64, error)
}

// NewMockPaymentRepository creates a new MockPaymentRepository with default behaviors
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

// Create records a new payment
func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	// Default behavior: success
	return nil
}

// ListByBookingID lists payments recorded against a booking
func (m *MockPaymentRepository) ListByBookingID(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	if m.ListByBookingIDFunc != nil {
		return m.ListByBookingIDFunc(ctx, bookingID)
	}
	// Default behavior: no payments
	return nil, nil
}

// SumCompletedByBookingID totals the completed payments of a booking
func (m *MockPaymentRepository) SumCompletedByBookingID(ctx context.Context, bookingID string) (int64, error) {
	if m.SumCompletedByBookingIDFunc != nil {
		return m.SumCompletedByBookingIDFunc(ctx, bookingID)
	}
	// Default behavior: nothing paid
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.PaymentRepository = (*MockPaymentRepository)(nil)
