package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// RoomHandlers handles room CRUD HTTP requests. Rooms hang off a
// property, so every operation first resolves the property under the
// caller's ownership.
type RoomHandlers struct {
	roomRepo     domain.RoomRepository
	propertyRepo domain.PropertyRepository
}

// NewRoomHandlers creates new room handlers
func NewRoomHandlers(roomRepo domain.RoomRepository, propertyRepo domain.PropertyRepository) *RoomHandlers {
	return &RoomHandlers{roomRepo: roomRepo, propertyRepo: propertyRepo}
}

// RoomRequest represents a room create/update payload. Rate is in
// cents.
type RoomRequest struct {
	PropertyID  string `json:"property_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	Rate        int64  `json:"rate"`
	Description string `json:"description"`
	Amenities   string `json:"amenities"`
	Status      string `json:"status"`
}

func (h *RoomHandlers) ownedProperty(c *gin.Context, propertyID string) (*domain.Property, bool) {
	property, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), propertyID, c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		}
		return nil, false
	}
	return property, true
}

// Create handles room creation
func (h *RoomHandlers) Create(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.ownedProperty(c, req.PropertyID); !ok {
		return
	}

	status := domain.RoomAvailable
	if req.Status != "" {
		parsed, err := domain.ParseRoomStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room status"})
			return
		}
		status = parsed
	}

	room := &domain.Room{
		PropertyID:  req.PropertyID,
		Name:        req.Name,
		Type:        req.Type,
		Capacity:    req.Capacity,
		Rate:        req.Rate,
		Description: req.Description,
		Amenities:   req.Amenities,
		Status:      status,
	}

	if err := h.roomRepo.Create(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": room})
}

// List handles listing rooms of a property, optionally filtered by
// status via the "status" query parameter.
func (h *RoomHandlers) List(c *gin.Context) {
	propertyID := c.Query("property_id")
	if propertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id is required"})
		return
	}

	if _, ok := h.ownedProperty(c, propertyID); !ok {
		return
	}

	var status domain.RoomStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := domain.ParseRoomStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room status"})
			return
		}
		status = parsed
	}

	rooms, err := h.roomRepo.ListByPropertyID(c.Request.Context(), propertyID, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"rooms": rooms}})
}

// Get handles fetching one room
func (h *RoomHandlers) Get(c *gin.Context) {
	room, ok := h.ownedRoom(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": room})
}

// Update handles updating one room
func (h *RoomHandlers) Update(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, ok := h.ownedRoom(c)
	if !ok {
		return
	}

	status := room.Status
	if req.Status != "" {
		parsed, err := domain.ParseRoomStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room status"})
			return
		}
		status = parsed
	}

	room.Name = req.Name
	room.Type = req.Type
	room.Capacity = req.Capacity
	room.Rate = req.Rate
	room.Description = req.Description
	room.Amenities = req.Amenities
	room.Status = status

	if err := h.roomRepo.Update(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": room})
}

// Delete handles deleting one room
func (h *RoomHandlers) Delete(c *gin.Context) {
	room, ok := h.ownedRoom(c)
	if !ok {
		return
	}

	if err := h.roomRepo.Delete(c.Request.Context(), room.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Room deleted"}})
}

// ownedRoom loads the room and verifies the caller owns its property.
// A room under a foreign property reads as not found.
func (h *RoomHandlers) ownedRoom(c *gin.Context) (*domain.Room, bool) {
	room, err := h.roomRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get room"})
		}
		return nil, false
	}

	if _, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), room.PropertyID, c.GetString("user_id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return nil, false
	}

	return room, true
}
