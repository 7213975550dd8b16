package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// SessionHandlers handles multi-session management HTTP requests. The
// caller's current session id comes from its token claims via the auth
// middleware, never from the request body.
type SessionHandlers struct {
	sessionSvc domain.SessionService
}

// NewSessionHandlers creates new session handlers
func NewSessionHandlers(sessionSvc domain.SessionService) *SessionHandlers {
	return &SessionHandlers{sessionSvc: sessionSvc}
}

type sessionResponse struct {
	ID          string `json:"id"`
	DeviceName  string `json:"device_name"`
	BrowserName string `json:"browser_name"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	CreatedAt   string `json:"created_at"`
	ExpiresAt   string `json:"expires_at"`
	IsCurrent   bool   `json:"is_current"`
}

// List handles listing the caller's active sessions
func (h *SessionHandlers) List(c *gin.Context) {
	userID := c.GetString("user_id")
	currentSessionID := c.GetString("session_id")

	infos, err := h.sessionSvc.ListForUser(c.Request.Context(), userID, currentSessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	sessions := make([]sessionResponse, 0, len(infos))
	for _, info := range infos {
		sessions = append(sessions, sessionResponse{
			ID:          info.ID,
			DeviceName:  info.DeviceName,
			BrowserName: info.BrowserName,
			IPAddress:   info.IPAddress,
			UserAgent:   info.UserAgent,
			CreatedAt:   info.CreatedAt.UTC().Format(time.RFC3339),
			ExpiresAt:   info.ExpiresAt.UTC().Format(time.RFC3339),
			IsCurrent:   info.IsCurrent,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"sessions": sessions}})
}

// Revoke handles revoking one non-current session
func (h *SessionHandlers) Revoke(c *gin.Context) {
	userID := c.GetString("user_id")
	currentSessionID := c.GetString("session_id")
	sessionID := c.Param("session_id")

	err := h.sessionSvc.Revoke(c.Request.Context(), userID, sessionID, currentSessionID)
	if err != nil {
		switch err {
		case domain.ErrSessionCurrent:
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot revoke the current session; use logout"})
		case domain.ErrSessionNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke session"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.SessionRevokedEvent, userID).WithSession(sessionID))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Session revoked"}})
}

// RevokeOthers handles revoking every session except the caller's
func (h *SessionHandlers) RevokeOthers(c *gin.Context) {
	userID := c.GetString("user_id")
	currentSessionID := c.GetString("session_id")

	revoked, err := h.sessionSvc.RevokeOthers(c.Request.Context(), userID, currentSessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke sessions"})
		return
	}

	audit(domain.NewAuditEvent(domain.SessionsRevokedOtherEvent, userID).WithSession(currentSessionID).WithMetadata("revoked", revoked))

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"revoked": revoked}})
}
