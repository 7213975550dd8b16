package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PaymentHandlers handles payment HTTP requests
type PaymentHandlers struct {
	paymentSvc   domain.PaymentService
	paymentRepo  domain.PaymentRepository
	bookingRepo  domain.BookingRepository
	propertyRepo domain.PropertyRepository
}

// NewPaymentHandlers creates new payment handlers
func NewPaymentHandlers(paymentSvc domain.PaymentService, paymentRepo domain.PaymentRepository, bookingRepo domain.BookingRepository, propertyRepo domain.PropertyRepository) *PaymentHandlers {
	return &PaymentHandlers{
		paymentSvc:   paymentSvc,
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

// PaymentRequest represents a payment record payload. Amount is in
// cents.
type PaymentRequest struct {
	BookingID     string `json:"booking_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Method        string `json:"method" binding:"required"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Notes         string `json:"notes"`
}

// Record handles recording a payment against a booking
func (h *PaymentHandlers) Record(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	method, err := domain.ParsePaymentMethod(req.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
		return
	}

	var state domain.PaymentState
	if req.Status != "" {
		state, err = domain.ParsePaymentState(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
			return
		}
	}

	payment := &domain.Payment{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		Method:        method,
		Status:        state,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}

	recorded, err := h.paymentSvc.Record(c.Request.Context(), c.GetString("user_id"), payment)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": recorded})
}

// List handles listing payments of a booking
func (h *PaymentHandlers) List(c *gin.Context) {
	bookingID := c.Query("booking_id")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	booking, err := h.bookingRepo.FindByID(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if _, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), booking.PropertyID, c.GetString("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	payments, err := h.paymentRepo.ListByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"payments": payments}})
}
