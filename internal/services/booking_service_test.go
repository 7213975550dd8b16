package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
	"github.com/mdestafadilah/pesan-pms/internal/mocks"
)

func bookingFixture() *domain.Booking {
	return &domain.Booking{
		PropertyID: "property_1",
		RoomID:     "room_1",
		GuestID:    "guest_1",
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		Adults:     2,
	}
}

func ownedPropertyMock() *mocks.MockPropertyRepository {
	propertyRepo := mocks.NewMockPropertyRepository()
	propertyRepo.FindByIDAndUserFunc = func(ctx context.Context, id, userID string) (*domain.Property, error) {
		if id != "property_1" || userID != "user_1" {
			return nil, domain.ErrResourceNotFound
		}
		return &domain.Property{ID: "property_1", UserID: "user_1", Name: "Villa Sari"}, nil
	}
	return propertyRepo
}

func availableRoomMock() *mocks.MockRoomRepository {
	roomRepo := mocks.NewMockRoomRepository()
	roomRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Room, error) {
		return &domain.Room{ID: "room_1", PropertyID: "property_1", Name: "Deluxe 1", Rate: 50000, Status: domain.RoomAvailable}, nil
	}
	return roomRepo
}

func knownGuestMock() *mocks.MockGuestRepository {
	guestRepo := mocks.NewMockGuestRepository()
	guestRepo.FindByIDAndUserFunc = func(ctx context.Context, id, userID string) (*domain.Guest, error) {
		return &domain.Guest{ID: "guest_1", UserID: "user_1", Name: "Siti", Phone: "+628123456789"}, nil
	}
	return guestRepo
}

func TestBookingServiceImpl_Create(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	bookingRepo.CreateFunc = func(ctx context.Context, booking *domain.Booking) error {
		booking.ID = "booking_new"
		return nil
	}
	notificationSvc := mocks.NewMockNotificationService()

	svc := NewBookingService(bookingRepo, ownedPropertyMock(), availableRoomMock(), knownGuestMock(), notificationSvc)

	booking, err := svc.Create(context.Background(), "user_1", bookingFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.BookingStatus != domain.BookingConfirmed {
		t.Errorf("status %q, want %q", booking.BookingStatus, domain.BookingConfirmed)
	}
	if booking.PaymentStatus != domain.PaymentPending {
		t.Errorf("payment status %q, want %q", booking.PaymentStatus, domain.PaymentPending)
	}
	// Three nights at the room rate.
	if booking.TotalAmount != 150000 {
		t.Errorf("total %d, want 150000", booking.TotalAmount)
	}
	if len(notificationSvc.SentSMS) != 1 {
		t.Fatalf("sent %d SMS, want 1", len(notificationSvc.SentSMS))
	}
	if notificationSvc.SentSMS[0].To != "+628123456789" {
		t.Errorf("SMS to %q, want guest phone", notificationSvc.SentSMS[0].To)
	}
}

func TestBookingServiceImpl_Create_KeepsExplicitTotal(t *testing.T) {
	svc := NewBookingService(mocks.NewMockBookingRepository(), ownedPropertyMock(), availableRoomMock(), knownGuestMock(), mocks.NewMockNotificationService())

	fixture := bookingFixture()
	fixture.TotalAmount = 99000
	booking, err := svc.Create(context.Background(), "user_1", fixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.TotalAmount != 99000 {
		t.Errorf("total %d, want caller's 99000", booking.TotalAmount)
	}
}

func TestBookingServiceImpl_Create_Errors(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*domain.Booking)
		setupMocks    func(*mocks.MockBookingRepository, *mocks.MockPropertyRepository, *mocks.MockRoomRepository, *mocks.MockGuestRepository)
		expectedError error
	}{
		{
			name: "check-out before check-in",
			mutate: func(b *domain.Booking) {
				b.CheckIn, b.CheckOut = b.CheckOut, b.CheckIn
			},
			setupMocks:    func(*mocks.MockBookingRepository, *mocks.MockPropertyRepository, *mocks.MockRoomRepository, *mocks.MockGuestRepository) {},
			expectedError: domain.ErrInvalidDateRange,
		},
		{
			name: "zero-night stay",
			mutate: func(b *domain.Booking) {
				b.CheckOut = b.CheckIn
			},
			setupMocks:    func(*mocks.MockBookingRepository, *mocks.MockPropertyRepository, *mocks.MockRoomRepository, *mocks.MockGuestRepository) {},
			expectedError: domain.ErrInvalidDateRange,
		},
		{
			name:   "foreign property reads as not found",
			mutate: func(b *domain.Booking) { b.PropertyID = "property_other" },
			setupMocks: func(*mocks.MockBookingRepository, *mocks.MockPropertyRepository, *mocks.MockRoomRepository, *mocks.MockGuestRepository) {
			},
			expectedError: domain.ErrResourceNotFound,
		},
		{
			name:   "room of another property",
			mutate: func(b *domain.Booking) {},
			setupMocks: func(bookingRepo *mocks.MockBookingRepository, propertyRepo *mocks.MockPropertyRepository, roomRepo *mocks.MockRoomRepository, guestRepo *mocks.MockGuestRepository) {
				roomRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Room, error) {
					return &domain.Room{ID: "room_1", PropertyID: "property_other", Status: domain.RoomAvailable}, nil
				}
			},
			expectedError: domain.ErrResourceNotFound,
		},
		{
			name:   "room under maintenance",
			mutate: func(b *domain.Booking) {},
			setupMocks: func(bookingRepo *mocks.MockBookingRepository, propertyRepo *mocks.MockPropertyRepository, roomRepo *mocks.MockRoomRepository, guestRepo *mocks.MockGuestRepository) {
				roomRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Room, error) {
					return &domain.Room{ID: "room_1", PropertyID: "property_1", Status: domain.RoomMaintenance}, nil
				}
			},
			expectedError: domain.ErrRoomUnavailable,
		},
		{
			name:   "overlapping booking",
			mutate: func(b *domain.Booking) {},
			setupMocks: func(bookingRepo *mocks.MockBookingRepository, propertyRepo *mocks.MockPropertyRepository, roomRepo *mocks.MockRoomRepository, guestRepo *mocks.MockGuestRepository) {
				bookingRepo.CountOverlappingFunc = func(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int64, error) {
					return 1, nil
				}
			},
			expectedError: domain.ErrBookingOverlap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepository()
			propertyRepo := ownedPropertyMock()
			roomRepo := availableRoomMock()
			guestRepo := knownGuestMock()
			tt.setupMocks(bookingRepo, propertyRepo, roomRepo, guestRepo)

			svc := NewBookingService(bookingRepo, propertyRepo, roomRepo, guestRepo, mocks.NewMockNotificationService())

			fixture := bookingFixture()
			tt.mutate(fixture)
			if _, err := svc.Create(context.Background(), "user_1", fixture); !errors.Is(err, tt.expectedError) {
				t.Errorf("error %v, want %v", err, tt.expectedError)
			}
		})
	}
}

func TestBookingServiceImpl_Transition(t *testing.T) {
	tests := []struct {
		name           string
		from           domain.BookingStatus
		next           domain.BookingStatus
		expectedError  error
		wantRoomStatus domain.RoomStatus
	}{
		{
			name:           "check-in occupies the room",
			from:           domain.BookingConfirmed,
			next:           domain.BookingCheckedIn,
			wantRoomStatus: domain.RoomOccupied,
		},
		{
			name:           "check-out frees the room",
			from:           domain.BookingCheckedIn,
			next:           domain.BookingCheckedOut,
			wantRoomStatus: domain.RoomAvailable,
		},
		{
			name:           "cancellation frees the room",
			from:           domain.BookingConfirmed,
			next:           domain.BookingCancelled,
			wantRoomStatus: domain.RoomAvailable,
		},
		{
			name:          "checked-out is terminal",
			from:          domain.BookingCheckedOut,
			next:          domain.BookingCheckedIn,
			expectedError: domain.ErrInvalidTransition,
		},
		{
			name:          "cannot skip check-in",
			from:          domain.BookingConfirmed,
			next:          domain.BookingCheckedOut,
			expectedError: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepository()
			bookingRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Booking, error) {
				b := bookingFixture()
				b.ID = id
				b.BookingStatus = tt.from
				return b, nil
			}
			roomRepo := availableRoomMock()

			svc := NewBookingService(bookingRepo, ownedPropertyMock(), roomRepo, knownGuestMock(), mocks.NewMockNotificationService())

			booking, err := svc.Transition(context.Background(), "user_1", "booking_1", tt.next)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("error %v, want %v", err, tt.expectedError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if booking.BookingStatus != tt.next {
				t.Errorf("status %q, want %q", booking.BookingStatus, tt.next)
			}
			if got := roomRepo.StatusUpdates["room_1"]; got != tt.wantRoomStatus {
				t.Errorf("room status %q, want %q", got, tt.wantRoomStatus)
			}
		})
	}
}

func TestBookingServiceImpl_Transition_ForeignBooking(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepository()
	bookingRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Booking, error) {
		b := bookingFixture()
		b.ID = id
		b.PropertyID = "property_other"
		b.BookingStatus = domain.BookingConfirmed
		return b, nil
	}

	svc := NewBookingService(bookingRepo, ownedPropertyMock(), availableRoomMock(), knownGuestMock(), mocks.NewMockNotificationService())

	if _, err := svc.Transition(context.Background(), "user_1", "booking_1", domain.BookingCheckedIn); !errors.Is(err, domain.ErrResourceNotFound) {
		t.Errorf("error %v, want %v", err, domain.ErrResourceNotFound)
	}
}
