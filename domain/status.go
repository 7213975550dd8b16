package domain

import "fmt"

// Status values are closed sets. Parsing rejects anything outside the set
// so unknown strings fail on write instead of falling through at render
// time.

// PropertyType classifies a property.
type PropertyType string

const (
	PropertyHotel     PropertyType = "hotel"
	PropertyHomestay  PropertyType = "homestay"
	PropertyVilla     PropertyType = "villa"
	PropertyApartment PropertyType = "apartment"
	PropertyOther     PropertyType = "other"
)

// ParsePropertyType validates a raw property type string.
func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyHotel, PropertyHomestay, PropertyVilla, PropertyApartment, PropertyOther:
		return PropertyType(s), nil
	}
	return "", fmt.Errorf("%w: property type %q", ErrInvalidStatus, s)
}

// RoomStatus describes room availability.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

// ParseRoomStatus validates a raw room status string.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomReserved:
		return RoomStatus(s), nil
	}
	return "", fmt.Errorf("%w: room status %q", ErrInvalidStatus, s)
}

// Bookable reports whether a room in this status accepts new bookings.
func (s RoomStatus) Bookable() bool {
	switch s {
	case RoomAvailable:
		return true
	case RoomOccupied, RoomMaintenance, RoomReserved:
		return false
	}
	return false
}

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked-in"
	BookingCheckedOut BookingStatus = "checked-out"
	BookingCancelled  BookingStatus = "cancelled"
)

// ParseBookingStatus validates a raw booking status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: booking status %q", ErrInvalidStatus, s)
}

// CanTransitionTo enforces the booking state machine:
// confirmed -> checked-in -> checked-out, with cancellation allowed
// before check-out. Terminal states accept nothing.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingConfirmed:
		return next == BookingCheckedIn || next == BookingCancelled
	case BookingCheckedIn:
		return next == BookingCheckedOut || next == BookingCancelled
	case BookingCheckedOut, BookingCancelled:
		return false
	}
	return false
}

// Active reports whether the booking still holds its room.
func (s BookingStatus) Active() bool {
	switch s {
	case BookingConfirmed, BookingCheckedIn:
		return true
	case BookingCheckedOut, BookingCancelled:
		return false
	}
	return false
}

// PaymentStatus is the booking-level payment position.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// ParsePaymentStatus validates a raw payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidStatus, s)
}

// PaymentMethod is how a payment was made.
type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodCard     PaymentMethod = "card"
	MethodTransfer PaymentMethod = "transfer"
	MethodEwallet  PaymentMethod = "ewallet"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCard, MethodTransfer, MethodEwallet:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: payment method %q", ErrInvalidStatus, s)
}

// PaymentState is the state of an individual payment row.
type PaymentState string

const (
	PaymentCompleted     PaymentState = "completed"
	PaymentStatePending  PaymentState = "pending"
	PaymentFailed        PaymentState = "failed"
	PaymentStateRefunded PaymentState = "refunded"
)

// ParsePaymentState validates a raw payment state string.
func ParsePaymentState(s string) (PaymentState, error) {
	switch PaymentState(s) {
	case PaymentCompleted, PaymentStatePending, PaymentFailed, PaymentStateRefunded:
		return PaymentState(s), nil
	}
	return "", fmt.Errorf("%w: payment state %q", ErrInvalidStatus, s)
}

// CountsTowardPaid reports whether this payment reduces the balance due.
func (s PaymentState) CountsTowardPaid() bool {
	switch s {
	case PaymentCompleted:
		return true
	case PaymentStatePending, PaymentFailed, PaymentStateRefunded:
		return false
	}
	return false
}
