package domain

import (
	"errors"
	"testing"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  BookingStatus
		expectErr bool
	}{
		{name: "confirmed", input: "confirmed", expected: BookingConfirmed},
		{name: "checked-in", input: "checked-in", expected: BookingCheckedIn},
		{name: "checked-out", input: "checked-out", expected: BookingCheckedOut},
		{name: "cancelled", input: "cancelled", expected: BookingCancelled},
		{name: "unknown value rejected", input: "checkedin", expectErr: true},
		{name: "empty rejected", input: "", expectErr: true},
		{name: "case sensitive", input: "Confirmed", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBookingStatus(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidStatus) {
					t.Errorf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{name: "confirmed to checked-in", from: BookingConfirmed, to: BookingCheckedIn, allowed: true},
		{name: "confirmed to cancelled", from: BookingConfirmed, to: BookingCancelled, allowed: true},
		{name: "confirmed cannot skip to checked-out", from: BookingConfirmed, to: BookingCheckedOut, allowed: false},
		{name: "checked-in to checked-out", from: BookingCheckedIn, to: BookingCheckedOut, allowed: true},
		{name: "checked-in to cancelled", from: BookingCheckedIn, to: BookingCancelled, allowed: true},
		{name: "checked-out is terminal", from: BookingCheckedOut, to: BookingConfirmed, allowed: false},
		{name: "cancelled is terminal", from: BookingCancelled, to: BookingConfirmed, allowed: false},
		{name: "no self transition", from: BookingConfirmed, to: BookingConfirmed, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("%s -> %s: expected %t, got %t", tt.from, tt.to, tt.allowed, got)
			}
		})
	}
}

func TestBookingStatus_Active(t *testing.T) {
	active := []BookingStatus{BookingConfirmed, BookingCheckedIn}
	inactive := []BookingStatus{BookingCheckedOut, BookingCancelled}

	for _, s := range active {
		if !s.Active() {
			t.Errorf("expected %q to be active", s)
		}
	}
	for _, s := range inactive {
		if s.Active() {
			t.Errorf("expected %q to be inactive", s)
		}
	}
}

func TestParseRoomStatus(t *testing.T) {
	for _, valid := range []string{"available", "occupied", "maintenance", "reserved"} {
		if _, err := ParseRoomStatus(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParseRoomStatus("vacant"); err == nil {
		t.Error("expected unknown room status to be rejected")
	}
}

func TestRoomStatus_Bookable(t *testing.T) {
	if !RoomAvailable.Bookable() {
		t.Error("available rooms should be bookable")
	}
	for _, s := range []RoomStatus{RoomOccupied, RoomMaintenance, RoomReserved} {
		if s.Bookable() {
			t.Errorf("expected %q not to be bookable", s)
		}
	}
}

func TestParsePropertyType(t *testing.T) {
	for _, valid := range []string{"hotel", "homestay", "villa", "apartment", "other"} {
		if _, err := ParsePropertyType(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParsePropertyType("resort"); err == nil {
		t.Error("expected unknown property type to be rejected")
	}
}

func TestPaymentState_CountsTowardPaid(t *testing.T) {
	if !PaymentCompleted.CountsTowardPaid() {
		t.Error("completed payments should count toward paid total")
	}
	for _, s := range []PaymentState{PaymentStatePending, PaymentFailed, PaymentStateRefunded} {
		if s.CountsTowardPaid() {
			t.Errorf("expected %q not to count toward paid total", s)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"cash", "card", "transfer", "ewallet"} {
		if _, err := ParsePaymentMethod(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParsePaymentMethod("crypto"); err == nil {
		t.Error("expected unknown payment method to be rejected")
	}
}
