package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// BookingHandlers handles booking HTTP requests
type BookingHandlers struct {
	bookingSvc   domain.BookingService
	bookingRepo  domain.BookingRepository
	propertyRepo domain.PropertyRepository
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(bookingSvc domain.BookingService, bookingRepo domain.BookingRepository, propertyRepo domain.PropertyRepository) *BookingHandlers {
	return &BookingHandlers{
		bookingSvc:   bookingSvc,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

// BookingRequest represents a booking creation payload. Dates are
// RFC 3339; check-in inclusive, check-out exclusive.
type BookingRequest struct {
	PropertyID  string    `json:"property_id" binding:"required"`
	RoomID      string    `json:"room_id" binding:"required"`
	GuestID     string    `json:"guest_id" binding:"required"`
	CheckIn     time.Time `json:"check_in" binding:"required"`
	CheckOut    time.Time `json:"check_out" binding:"required"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	TotalAmount int64     `json:"total_amount"`
	Notes       string    `json:"notes"`
}

// TransitionRequest moves a booking to its next lifecycle state
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create handles booking creation
func (h *BookingHandlers) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking := &domain.Booking{
		PropertyID:  req.PropertyID,
		RoomID:      req.RoomID,
		GuestID:     req.GuestID,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Adults:      req.Adults,
		Children:    req.Children,
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}

	created, err := h.bookingSvc.Create(c.Request.Context(), c.GetString("user_id"), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property, room or guest not found"})
		case errors.Is(err, domain.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
		case errors.Is(err, domain.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is not available"})
		case errors.Is(err, domain.ErrBookingOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is already booked for those dates"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// List handles listing the caller's bookings, optionally filtered to a
// property via the "property_id" query parameter.
func (h *BookingHandlers) List(c *gin.Context) {
	userID := c.GetString("user_id")

	if propertyID := c.Query("property_id"); propertyID != "" {
		if _, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), propertyID, userID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		bookings, err := h.bookingRepo.ListByPropertyID(c.Request.Context(), propertyID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"bookings": bookings}})
		return
	}

	bookings, err := h.bookingRepo.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"bookings": bookings}})
}

// Get handles fetching one booking
func (h *BookingHandlers) Get(c *gin.Context) {
	booking, ok := h.ownedBooking(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// Transition handles moving a booking through its lifecycle
func (h *BookingHandlers) Transition(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	booking, err := h.bookingSvc.Transition(c.Request.Context(), c.GetString("user_id"), c.Param("id"), next)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, domain.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": booking})
}

// ownedBooking loads the booking and verifies the caller owns its
// property.
func (h *BookingHandlers) ownedBooking(c *gin.Context) (*domain.Booking, bool) {
	booking, err := h.bookingRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get booking"})
		}
		return nil, false
	}

	if _, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), booking.PropertyID, c.GetString("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return nil, false
	}

	return booking, true
}
