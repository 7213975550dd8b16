package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// GuestHandlers handles guest CRUD HTTP requests, scoped to the
// authenticated owner.
type GuestHandlers struct {
	guestRepo domain.GuestRepository
}

// NewGuestHandlers creates new guest handlers
func NewGuestHandlers(guestRepo domain.GuestRepository) *GuestHandlers {
	return &GuestHandlers{guestRepo: guestRepo}
}

// GuestRequest represents a guest create/update payload
type GuestRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
	ZipCode  string `json:"zip_code"`
	IDType   string `json:"id_type"`
	IDNumber string `json:"id_number"`
	Notes    string `json:"notes"`
}

// Create handles guest creation
func (h *GuestHandlers) Create(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest := &domain.Guest{
		UserID:   c.GetString("user_id"),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		Country:  req.Country,
		ZipCode:  req.ZipCode,
		IDType:   req.IDType,
		IDNumber: req.IDNumber,
		Notes:    req.Notes,
	}

	if err := h.guestRepo.Create(c.Request.Context(), guest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": guest})
}

// List handles listing the caller's guests
func (h *GuestHandlers) List(c *gin.Context) {
	guests, err := h.guestRepo.ListByUserID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"guests": guests}})
}

// Get handles fetching one guest
func (h *GuestHandlers) Get(c *gin.Context) {
	guest, err := h.guestRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": guest})
}

// Update handles updating one guest
func (h *GuestHandlers) Update(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := h.guestRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guest"})
		return
	}

	guest.Name = req.Name
	guest.Email = req.Email
	guest.Phone = req.Phone
	guest.Address = req.Address
	guest.City = req.City
	guest.State = req.State
	guest.Country = req.Country
	guest.ZipCode = req.ZipCode
	guest.IDType = req.IDType
	guest.IDNumber = req.IDNumber
	guest.Notes = req.Notes

	if err := h.guestRepo.Update(c.Request.Context(), guest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": guest})
}

// Delete handles deleting one guest
func (h *GuestHandlers) Delete(c *gin.Context) {
	guest, err := h.guestRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get guest"})
		return
	}

	if err := h.guestRepo.Delete(c.Request.Context(), guest.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete guest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Guest deleted"}})
}
