package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email address not verified")
	ErrAccountNotFound    = errors.New("account not found")
)

// Verification code errors
var (
	ErrCodeExpired     = errors.New("verification code has expired")
	ErrCodeInvalid     = errors.New("invalid verification code")
	ErrCodeMaxAttempts = errors.New("maximum verification attempts exceeded")
	ErrCodeNotFound    = errors.New("verification code not found")
	ErrCodeResendLimit = errors.New("verification resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
	ErrSessionCurrent  = errors.New("cannot revoke the current session")
)

// Passkey errors
var (
	ErrPasskeyNotFound        = errors.New("passkey not found")
	ErrCeremonyNotFound       = errors.New("passkey ceremony not found")
	ErrCeremonyExpired        = errors.New("passkey ceremony has expired")
	ErrCeremonyKindMismatch   = errors.New("passkey ceremony kind mismatch")
	ErrCredentialUnrecognized = errors.New("credential not recognized")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
	ErrResourceNotFound = errors.New("resource not found")
)

// PMS domain errors
var (
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrRoomUnavailable   = errors.New("room is not available for booking")
	ErrBookingOverlap    = errors.New("room already booked for the requested dates")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
)
