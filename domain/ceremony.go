package domain

import "time"

// CeremonyKind describes the WebAuthn ceremony purpose.
type CeremonyKind string

const (
	CeremonyRegistration CeremonyKind = "registration"
	CeremonyLogin        CeremonyKind = "login"
)

// PasskeyCeremony is the transient server half of a WebAuthn ceremony.
// DataJSON is the webauthn library's session data, stored opaque.
// Ceremonies are TTL-bound; an expired or kind-mismatched ceremony is
// rejected, never resumed.
type PasskeyCeremony struct {
	ID        string       `json:"id"`
	Kind      CeremonyKind `json:"kind"`
	UserID    string       `json:"user_id,omitempty"`
	DataJSON  string       `json:"data_json"`
	ExpiresAt time.Time    `json:"expires_at"`
}
