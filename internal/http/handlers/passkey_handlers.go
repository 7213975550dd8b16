package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PasskeyHandlers handles WebAuthn credential HTTP requests
type PasskeyHandlers struct {
	passkeySvc domain.PasskeyService
}

// NewPasskeyHandlers creates new passkey handlers
func NewPasskeyHandlers(passkeySvc domain.PasskeyService) *PasskeyHandlers {
	return &PasskeyHandlers{passkeySvc: passkeySvc}
}

// FinishRegistrationRequest carries the browser's credential-creation
// response back with the ceremony it belongs to.
type FinishRegistrationRequest struct {
	CeremonyID string          `json:"ceremony_id" binding:"required"`
	Name       string          `json:"name"`
	Response   json.RawMessage `json:"response" binding:"required"`
}

// BeginLoginRequest starts a passkey login; an empty email means a
// discoverable (usernameless) ceremony.
type BeginLoginRequest struct {
	Email string `json:"email"`
}

// FinishLoginRequest carries the browser's assertion response
type FinishLoginRequest struct {
	CeremonyID string          `json:"ceremony_id" binding:"required"`
	Response   json.RawMessage `json:"response" binding:"required"`
}

type passkeyResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DeviceType string `json:"deviceType"`
	CreatedAt  string `json:"createdAt"`
	LastUsedAt string `json:"lastUsedAt,omitempty"`
}

// BeginRegistration handles starting a credential-creation ceremony
// (requires authentication)
func (h *PasskeyHandlers) BeginRegistration(c *gin.Context) {
	userID := c.GetString("user_id")

	optionsJSON, ceremonyID, err := h.passkeySvc.BeginRegistration(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin passkey registration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ceremony_id": ceremonyID,
			"options":     json.RawMessage(optionsJSON),
		},
	})
}

// FinishRegistration handles completing a credential-creation ceremony
// (requires authentication)
func (h *PasskeyHandlers) FinishRegistration(c *gin.Context) {
	var req FinishRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	passkey, err := h.passkeySvc.FinishRegistration(c.Request.Context(), req.CeremonyID, req.Name, req.Response)
	if err != nil {
		switch err {
		case domain.ErrCeremonyNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Ceremony not found"})
		case domain.ErrCeremonyExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ceremony has expired"})
		case domain.ErrCeremonyKindMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ceremony kind mismatch"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to register passkey"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.PasskeyRegisteredEvent, passkey.UserID).WithMetadata("passkey_id", passkey.ID))

	c.JSON(http.StatusCreated, gin.H{"data": toPasskeyResponse(passkey)})
}

// BeginLogin handles starting a passkey login ceremony (no session
// required)
func (h *PasskeyHandlers) BeginLogin(c *gin.Context) {
	var req BeginLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	optionsJSON, ceremonyID, err := h.passkeySvc.BeginLogin(c.Request.Context(), req.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin passkey login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ceremony_id": ceremonyID,
			"options":     json.RawMessage(optionsJSON),
		},
	})
}

// FinishLogin handles completing a passkey login ceremony
func (h *PasskeyHandlers) FinishLogin(c *gin.Context) {
	var req FinishLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := clientInfo(c)
	result, err := h.passkeySvc.FinishLogin(c.Request.Context(), req.CeremonyID, req.Response, client)
	if err != nil {
		switch err {
		case domain.ErrCeremonyNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Ceremony not found"})
		case domain.ErrCeremonyExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ceremony has expired"})
		case domain.ErrCeremonyKindMismatch:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ceremony kind mismatch"})
		case domain.ErrCredentialUnrecognized:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credential not recognized"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Passkey login failed"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.PasskeyLoginEvent, result.User.ID).WithSession(result.SessionID).WithClient(client))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"session_id":   result.SessionID,
			"user": gin.H{
				"id":    result.User.ID,
				"name":  result.User.Name,
				"email": result.User.Email,
				"role":  result.User.Role,
			},
		},
	})
}

// List handles listing the caller's passkeys (requires authentication).
// An empty list is a normal response, not an error.
func (h *PasskeyHandlers) List(c *gin.Context) {
	userID := c.GetString("user_id")

	passkeys, err := h.passkeySvc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list passkeys"})
		return
	}

	responses := make([]passkeyResponse, 0, len(passkeys))
	for i := range passkeys {
		responses = append(responses, toPasskeyResponse(&passkeys[i]))
	}

	c.JSON(http.StatusOK, gin.H{"passkeys": responses})
}

// Delete handles deleting one of the caller's passkeys (requires
// authentication). A foreign or unknown id is a 404 either way.
func (h *PasskeyHandlers) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	passkeyID := c.Param("id")

	err := h.passkeySvc.Delete(c.Request.Context(), userID, passkeyID)
	if err != nil {
		if err == domain.ErrPasskeyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Passkey not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete passkey"})
		return
	}

	audit(domain.NewAuditEvent(domain.PasskeyDeletedEvent, userID).WithMetadata("passkey_id", passkeyID))

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func toPasskeyResponse(passkey *domain.Passkey) passkeyResponse {
	resp := passkeyResponse{
		ID:         passkey.ID,
		Name:       passkey.Name,
		DeviceType: passkey.DeviceType,
		CreatedAt:  passkey.CreatedAt.UTC().Format(time.RFC3339),
	}
	if passkey.LastUsedAt != nil {
		resp.LastUsedAt = passkey.LastUsedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
