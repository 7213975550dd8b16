package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
)

func march(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func createBooking(t *testing.T, repo domain.BookingRepository, roomID string, checkIn, checkOut time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()

	booking := &domain.Booking{
		PropertyID:    "property_1",
		RoomID:        roomID,
		GuestID:       "guest_1",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        2,
		TotalAmount:   40000,
		PaymentStatus: domain.PaymentPending,
		BookingStatus: status,
	}
	if err := repo.Create(context.Background(), booking); err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func TestBookingRepositoryImpl_CountOverlapping(t *testing.T) {
	db := setupTestDB(t, &DBBooking{})
	repo := NewBookingRepository(db)
	ctx := context.Background()

	// Confirmed stay in room_1 over [Mar 10, Mar 14).
	confirmed := createBooking(t, repo, "room_1", march(10), march(14), domain.BookingConfirmed)
	// A cancelled stay spanning the whole month releases the room.
	createBooking(t, repo, "room_1", march(1), march(20), domain.BookingCancelled)
	createBooking(t, repo, "room_2", march(10), march(14), domain.BookingConfirmed)

	tests := []struct {
		name      string
		roomID    string
		checkIn   time.Time
		checkOut  time.Time
		excludeID string
		want      int64
	}{
		{
			name:     "overlapping range",
			roomID:   "room_1",
			checkIn:  march(12),
			checkOut: march(16),
			want:     1,
		},
		{
			name:     "range containing the stay",
			roomID:   "room_1",
			checkIn:  march(8),
			checkOut: march(18),
			want:     1,
		},
		{
			name:     "back to back after checkout",
			roomID:   "room_1",
			checkIn:  march(14),
			checkOut: march(18),
			want:     0,
		},
		{
			name:     "back to back before checkin",
			roomID:   "room_1",
			checkIn:  march(6),
			checkOut: march(10),
			want:     0,
		},
		{
			name:     "only the cancelled stay in range",
			roomID:   "room_1",
			checkIn:  march(2),
			checkOut: march(6),
			want:     0,
		},
		{
			name:      "rebooking the same stay excludes itself",
			roomID:    "room_1",
			checkIn:   march(10),
			checkOut:  march(14),
			excludeID: confirmed.ID,
			want:      0,
		},
		{
			name:     "different room",
			roomID:   "room_3",
			checkIn:  march(10),
			checkOut: march(14),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.CountOverlapping(ctx, tt.roomID, tt.checkIn, tt.checkOut, tt.excludeID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if count != tt.want {
				t.Errorf("count = %d, want %d", count, tt.want)
			}
		})
	}
}
