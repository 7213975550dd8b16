package auth

import (
	"github.com/go-webauthn/webauthn/webauthn"
)

// NewWebAuthn builds the relying-party handle used for every passkey
// ceremony. RPID must match the domain the browser sees or assertions
// fail validation.
func NewWebAuthn(rpID, rpDisplayName string, rpOrigins []string) (*webauthn.WebAuthn, error) {
	return webauthn.New(&webauthn.Config{
		RPDisplayName: rpDisplayName,
		RPID:          rpID,
		RPOrigins:     rpOrigins,
	})
}
