package services

import (
	"context"
	"fmt"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PaymentServiceImpl implements domain.PaymentService
type PaymentServiceImpl struct {
	paymentRepo  domain.PaymentRepository
	bookingRepo  domain.BookingRepository
	propertyRepo domain.PropertyRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo domain.PaymentRepository,
	bookingRepo domain.BookingRepository,
	propertyRepo domain.PropertyRepository,
) domain.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

// Record implements domain.PaymentService. After every recorded payment
// the booking's payment status is recomputed from the completed total,
// never incremented in place.
func (s *PaymentServiceImpl) Record(ctx context.Context, userID string, payment *domain.Payment) (*domain.Payment, error) {
	booking, err := s.bookingRepo.FindByID(ctx, payment.BookingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.FindByIDAndUser(ctx, booking.PropertyID, userID); err != nil {
		return nil, err
	}

	if payment.Status == "" {
		payment.Status = domain.PaymentCompleted
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	paid, err := s.paymentRepo.SumCompletedByBookingID(ctx, payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to total payments: %w", err)
	}

	booking.PaymentStatus = paymentStatusFor(paid, booking.TotalAmount)
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking payment status: %w", err)
	}

	return payment, nil
}

// paymentStatusFor derives the booking-level payment position from the
// completed total.
func paymentStatusFor(paid, total int64) domain.PaymentStatus {
	switch {
	case paid <= 0:
		return domain.PaymentPending
	case paid < total:
		return domain.PaymentPartial
	default:
		return domain.PaymentPaid
	}
}
