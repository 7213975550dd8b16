package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PropertyHandlers handles property CRUD HTTP requests, always scoped
// to the authenticated owner.
type PropertyHandlers struct {
	propertyRepo domain.PropertyRepository
}

// NewPropertyHandlers creates new property handlers
func NewPropertyHandlers(propertyRepo domain.PropertyRepository) *PropertyHandlers {
	return &PropertyHandlers{propertyRepo: propertyRepo}
}

// PropertyRequest represents a property create/update payload
type PropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	ZipCode     string `json:"zip_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// Create handles property creation
func (h *PropertyHandlers) Create(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	propertyType, err := domain.ParsePropertyType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property type"})
		return
	}

	property := &domain.Property{
		UserID:      c.GetString("user_id"),
		Name:        req.Name,
		Type:        propertyType,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Description: req.Description,
	}

	if err := h.propertyRepo.Create(c.Request.Context(), property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": property})
}

// List handles listing the caller's properties
func (h *PropertyHandlers) List(c *gin.Context) {
	properties, err := h.propertyRepo.ListByUserID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"properties": properties}})
}

// Get handles fetching one property
func (h *PropertyHandlers) Get(c *gin.Context) {
	property, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": property})
}

// Update handles updating one property
func (h *PropertyHandlers) Update(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	propertyType, err := domain.ParsePropertyType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property type"})
		return
	}

	property, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	property.Name = req.Name
	property.Type = propertyType
	property.Address = req.Address
	property.City = req.City
	property.State = req.State
	property.Country = req.Country
	property.ZipCode = req.ZipCode
	property.Phone = req.Phone
	property.Email = req.Email
	property.Website = req.Website
	property.Description = req.Description

	if err := h.propertyRepo.Update(c.Request.Context(), property); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": property})
}

// Delete handles deleting one property
func (h *PropertyHandlers) Delete(c *gin.Context) {
	property, err := h.propertyRepo.FindByIDAndUser(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		if err == domain.ErrResourceNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}

	if err := h.propertyRepo.Delete(c.Request.Context(), property.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Property deleted"}})
}
