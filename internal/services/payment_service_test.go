package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mdestafadilah/pesan-pms/domain"
	"github.com/mdestafadilah/pesan-pms/internal/mocks"
)

func TestPaymentServiceImpl_Record(t *testing.T) {
	tests := []struct {
		name              string
		amount            int64
		completedTotal    int64
		wantBookingStatus domain.PaymentStatus
	}{
		{
			name:              "partial payment",
			amount:            50000,
			completedTotal:    50000,
			wantBookingStatus: domain.PaymentPartial,
		},
		{
			name:              "final installment pays in full",
			amount:            100000,
			completedTotal:    150000,
			wantBookingStatus: domain.PaymentPaid,
		},
		{
			name:              "overpayment still reads paid",
			amount:            200000,
			completedTotal:    200000,
			wantBookingStatus: domain.PaymentPaid,
		},
		{
			name:              "nothing completed stays pending",
			amount:            50000,
			completedTotal:    0,
			wantBookingStatus: domain.PaymentPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepository()
			bookingRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Booking, error) {
				return &domain.Booking{ID: id, PropertyID: "property_1", TotalAmount: 150000, PaymentStatus: domain.PaymentPending}, nil
			}
			var updated *domain.Booking
			bookingRepo.UpdateFunc = func(ctx context.Context, booking *domain.Booking) error {
				updated = booking
				return nil
			}

			paymentRepo := mocks.NewMockPaymentRepository()
			paymentRepo.SumCompletedByBookingIDFunc = func(ctx context.Context, bookingID string) (int64, error) {
				return tt.completedTotal, nil
			}

			svc := NewPaymentService(paymentRepo, bookingRepo, ownedPropertyMock())

			payment, err := svc.Record(context.Background(), "user_1", &domain.Payment{
				BookingID: "booking_1",
				Amount:    tt.amount,
				Method:    domain.MethodTransfer,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Unset status defaults to completed.
			if payment.Status != domain.PaymentCompleted {
				t.Errorf("payment status %q, want %q", payment.Status, domain.PaymentCompleted)
			}
			if updated == nil {
				t.Fatal("booking payment status never recomputed")
			}
			if updated.PaymentStatus != tt.wantBookingStatus {
				t.Errorf("booking payment status %q, want %q", updated.PaymentStatus, tt.wantBookingStatus)
			}
		})
	}
}

func TestPaymentServiceImpl_Record_KeepsExplicitState(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	bookingRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Booking, error) {
		return &domain.Booking{ID: id, PropertyID: "property_1", TotalAmount: 150000}, nil
	}

	svc := NewPaymentService(mocks.NewMockPaymentRepository(), bookingRepo, ownedPropertyMock())

	payment, err := svc.Record(context.Background(), "user_1", &domain.Payment{
		BookingID: "booking_1",
		Amount:    50000,
		Method:    domain.MethodCash,
		Status:    domain.PaymentStatePending,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != domain.PaymentStatePending {
		t.Errorf("payment status %q, want caller's %q", payment.Status, domain.PaymentStatePending)
	}
}

func TestPaymentServiceImpl_Record_ForeignBooking(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	bookingRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Booking, error) {
		return &domain.Booking{ID: id, PropertyID: "property_other", TotalAmount: 150000}, nil
	}

	svc := NewPaymentService(mocks.NewMockPaymentRepository(), bookingRepo, ownedPropertyMock())

	if _, err := svc.Record(context.Background(), "user_1", &domain.Payment{BookingID: "booking_1", Amount: 1000}); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("error %v, want %v", err, domain.ErrResourceNotFound)
	}
}

func TestPaymentServiceImpl_Record_UnknownBooking(t *testing.T) {
	svc := NewPaymentService(mocks.NewMockPaymentRepository(), mocks.NewMockBookingRepository(), ownedPropertyMock())

	if _, err := svc.Record(context.Background(), "user_1", &domain.Payment{BookingID: "booking_gone", Amount: 1000}); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("error %v, want %v", err, domain.ErrResourceNotFound)
	}
}
