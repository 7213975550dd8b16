package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// ReportHandlers handles read-only dashboard aggregates
type ReportHandlers struct {
	reportRepo domain.ReportRepository
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportRepo domain.ReportRepository) *ReportHandlers {
	return &ReportHandlers{reportRepo: reportRepo}
}

// Revenue handles monthly revenue totals from completed payments
func (h *ReportHandlers) Revenue(c *gin.Context) {
	points, err := h.reportRepo.MonthlyRevenue(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build revenue report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"revenue": points}})
}

// Occupancy handles per-property room occupancy
func (h *ReportHandlers) Occupancy(c *gin.Context) {
	reports, err := h.reportRepo.Occupancy(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build occupancy report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"occupancy": reports}})
}

// Guests handles the total guest count
func (h *ReportHandlers) Guests(c *gin.Context) {
	count, err := h.reportRepo.GuestCount(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"guest_count": count}})
}
