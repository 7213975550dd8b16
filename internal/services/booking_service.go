package services

import (
	"context"
	"fmt"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// BookingServiceImpl implements domain.BookingService
type BookingServiceImpl struct {
	bookingRepo     domain.BookingRepository
	propertyRepo    domain.PropertyRepository
	roomRepo        domain.RoomRepository
	guestRepo       domain.GuestRepository
	notificationSvc domain.NotificationService
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo domain.BookingRepository,
	propertyRepo domain.PropertyRepository,
	roomRepo domain.RoomRepository,
	guestRepo domain.GuestRepository,
	notificationSvc domain.NotificationService,
) domain.BookingService {
	return &BookingServiceImpl{
		bookingRepo:     bookingRepo,
		propertyRepo:    propertyRepo,
		roomRepo:        roomRepo,
		guestRepo:       guestRepo,
		notificationSvc: notificationSvc,
	}
}

// Create implements domain.BookingService. The property scope check
// doubles as the ownership check; a foreign property id reads as not
// found.
func (s *BookingServiceImpl) Create(ctx context.Context, userID string, booking *domain.Booking) (*domain.Booking, error) {
	if !booking.CheckIn.Before(booking.CheckOut) {
		return nil, domain.ErrInvalidDateRange
	}

	property, err := s.propertyRepo.FindByIDAndUser(ctx, booking.PropertyID, userID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(ctx, booking.RoomID)
	if err != nil {
		return nil, err
	}
	if room.PropertyID != property.ID {
		return nil, domain.ErrResourceNotFound
	}
	if room.Status == domain.RoomMaintenance {
		return nil, domain.ErrRoomUnavailable
	}

	guest, err := s.guestRepo.FindByIDAndUser(ctx, booking.GuestID, userID)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.bookingRepo.CountOverlapping(ctx, booking.RoomID, booking.CheckIn, booking.CheckOut, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check booking overlap: %w", err)
	}
	if overlapping > 0 {
		return nil, domain.ErrBookingOverlap
	}

	if booking.TotalAmount == 0 {
		nights := int64(booking.CheckOut.Sub(booking.CheckIn).Hours() / 24)
		booking.TotalAmount = room.Rate * nights
	}
	booking.BookingStatus = domain.BookingConfirmed
	booking.PaymentStatus = domain.PaymentPending

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// Confirmation SMS is best effort; the booking stands either way.
	if guest.Phone != "" {
		message := fmt.Sprintf("Booking confirmed at %s: %s, %s to %s.",
			property.Name, room.Name,
			booking.CheckIn.Format("2 Jan 2006"), booking.CheckOut.Format("2 Jan 2006"))
		_ = s.notificationSvc.SendSMS(guest.Phone, message)
	}

	return booking, nil
}

// Transition implements domain.BookingService. Room status follows the
// booking: check-in occupies the room, check-out and cancellation free
// it.
func (s *BookingServiceImpl) Transition(ctx context.Context, userID, bookingID string, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.FindByIDAndUser(ctx, booking.PropertyID, userID); err != nil {
		return nil, err
	}

	if !booking.BookingStatus.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, booking.BookingStatus, next)
	}

	booking.BookingStatus = next
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	switch next {
	case domain.BookingCheckedIn:
		err = s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomOccupied)
	case domain.BookingCheckedOut, domain.BookingCancelled:
		err = s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomAvailable)
	default:
		err = nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}

	return booking, nil
}
