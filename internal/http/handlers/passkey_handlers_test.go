package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
	"github.com/mdestafadilah/pesan-pms/internal/mocks"
)

func TestPasskeyHandlers_List(t *testing.T) {
	lastUsed := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	passkeySvc := mocks.NewMockPasskeyService()
	passkeySvc.ListFunc = func(ctx context.Context, userID string) ([]domain.Passkey, error) {
		return []domain.Passkey{
			{
				ID:         "passkey_1",
				Name:       "MacBook",
				DeviceType: "multiDevice",
				CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				LastUsedAt: &lastUsed,
			},
			{
				ID:         "passkey_2",
				Name:       "YubiKey",
				DeviceType: "singleDevice",
				CreatedAt:  time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			},
		}, nil
	}

	h := NewPasskeyHandlers(passkeySvc)
	r := newAuthedRouter("user_1", "session_1", func(g *gin.RouterGroup) {
		g.GET("/api/passkeys", h.List)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/passkeys", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var body struct {
		Passkeys []struct {
			ID         string `json:"id"`
			DeviceType string `json:"deviceType"`
			LastUsedAt string `json:"lastUsedAt"`
		} `json:"passkeys"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Passkeys) != 2 {
		t.Fatalf("got %d passkeys, want 2", len(body.Passkeys))
	}
	if body.Passkeys[0].DeviceType != "multiDevice" {
		t.Errorf("deviceType %q, want multiDevice", body.Passkeys[0].DeviceType)
	}
	if body.Passkeys[0].LastUsedAt != "2026-01-15T08:30:00Z" {
		t.Errorf("lastUsedAt %q, want RFC3339 UTC", body.Passkeys[0].LastUsedAt)
	}
	// Never used means the field is omitted, not zeroed.
	if body.Passkeys[1].LastUsedAt != "" {
		t.Errorf("lastUsedAt %q, want empty", body.Passkeys[1].LastUsedAt)
	}
}

func TestPasskeyHandlers_List_Empty(t *testing.T) {
	h := NewPasskeyHandlers(mocks.NewMockPasskeyService())
	r := newAuthedRouter("user_1", "session_1", func(g *gin.RouterGroup) {
		g.GET("/api/passkeys", h.List)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/passkeys", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"passkeys":[]`) {
		t.Errorf("body %q, want empty passkeys array", w.Body.String())
	}
}

func TestPasskeyHandlers_Delete(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "foreign or unknown passkey", deleteErr: domain.ErrPasskeyNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passkeySvc := mocks.NewMockPasskeyService()
			passkeySvc.DeleteFunc = func(ctx context.Context, userID, passkeyID string) error {
				if userID != "user_1" || passkeyID != "passkey_1" {
					t.Errorf("delete scoped to user %q passkey %q", userID, passkeyID)
				}
				return tt.deleteErr
			}

			h := NewPasskeyHandlers(passkeySvc)
			r := newAuthedRouter("user_1", "session_1", func(g *gin.RouterGroup) {
				g.DELETE("/api/passkeys/:id", h.Delete)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/passkeys/passkey_1", nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && !strings.Contains(w.Body.String(), `"success":true`) {
				t.Errorf("body %q, want success true", w.Body.String())
			}
		})
	}
}

func TestPasskeyHandlers_FinishLogin_CeremonyErrors(t *testing.T) {
	tests := []struct {
		name       string
		finishErr  error
		wantStatus int
	}{
		{name: "unknown ceremony", finishErr: domain.ErrCeremonyNotFound, wantStatus: http.StatusNotFound},
		{name: "expired ceremony", finishErr: domain.ErrCeremonyExpired, wantStatus: http.StatusBadRequest},
		{name: "registration ceremony used for login", finishErr: domain.ErrCeremonyKindMismatch, wantStatus: http.StatusBadRequest},
		{name: "unrecognized credential", finishErr: domain.ErrCredentialUnrecognized, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passkeySvc := mocks.NewMockPasskeyService()
			passkeySvc.FinishLoginFunc = func(ctx context.Context, ceremonyID string, responseJSON []byte, client domain.ClientInfo) (*domain.AuthResult, error) {
				return nil, tt.finishErr
			}

			gin.SetMode(gin.TestMode)
			r := gin.New()
			h := NewPasskeyHandlers(passkeySvc)
			r.POST("/auth/passkey/login/finish", h.FinishLogin)

			payload := `{"ceremony_id":"ceremony_1","response":{}}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/passkey/login/finish", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestPasskeyHandlers_FinishLogin_Success(t *testing.T) {
	passkeySvc := mocks.NewMockPasskeyService()
	passkeySvc.FinishLoginFunc = func(ctx context.Context, ceremonyID string, responseJSON []byte, client domain.ClientInfo) (*domain.AuthResult, error) {
		if ceremonyID != "ceremony_1" {
			t.Errorf("ceremony id %q, want ceremony_1", ceremonyID)
		}
		return &domain.AuthResult{
			User:        &domain.User{ID: "user_1", Name: "Budi", Email: "budi@example.com", Role: "user"},
			AccessToken: "token_abc",
			SessionID:   "session_new",
			ExpiresIn:   900,
		}, nil
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPasskeyHandlers(passkeySvc)
	r.POST("/auth/passkey/login/finish", h.FinishLogin)

	payload := `{"ceremony_id":"ceremony_1","response":{"id":"credential"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/passkey/login/finish", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			SessionID   string `json:"session_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Data.AccessToken != "token_abc" || body.Data.TokenType != "Bearer" || body.Data.SessionID != "session_new" {
		t.Errorf("unexpected login payload: %+v", body.Data)
	}
}
