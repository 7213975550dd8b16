package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	MarkEmailVerified(ctx context.Context, userID string) error
}

// AccountRepository defines credential-provider linkage data access
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByUserAndProvider(ctx context.Context, userID, providerID string) (*Account, error)
	UpdatePassword(ctx context.Context, accountID, passwordHash string) error
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	ListByUserID(ctx context.Context, userID string) ([]Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteByUserIDAndID deletes one session scoped to its owner and
	// reports whether a row was actually removed.
	DeleteByUserIDAndID(ctx context.Context, userID, sessionID string) (bool, error)
	// DeleteOthers deletes every session of the user except keepID in a
	// single statement and returns the number removed.
	DeleteOthers(ctx context.Context, userID, keepID string) (int64, error)
	Touch(ctx context.Context, sessionID string, at time.Time) error
	DeleteExpired(ctx context.Context) error
}

// PasskeyRepository defines passkey credential data access
type PasskeyRepository interface {
	Create(ctx context.Context, passkey *Passkey) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*Passkey, error)
	FindByCredentialID(ctx context.Context, credentialID string) (*Passkey, error)
	ListByUserID(ctx context.Context, userID string) ([]Passkey, error)
	Update(ctx context.Context, passkey *Passkey) error
	Delete(ctx context.Context, id string) error
}

// CeremonyStore holds in-flight WebAuthn ceremony state with a TTL
type CeremonyStore interface {
	Put(ctx context.Context, ceremony *PasskeyCeremony) error
	Get(ctx context.Context, id string) (*PasskeyCeremony, error)
	Delete(ctx context.Context, id string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string, client ClientInfo) (*AuthResult, error)
	VerifyEmail(ctx context.Context, email, code string) error
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID string) (*User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	// ResetPassword replaces the credential password after the emailed
	// code verifies; it is the unauthenticated recovery path.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// SessionService defines multi-session management for a user. The
// current session id always comes from the caller's token claims, so
// "current" is a token match, never stored state.
type SessionService interface {
	ListForUser(ctx context.Context, userID, currentSessionID string) ([]SessionInfo, error)
	Revoke(ctx context.Context, userID, sessionID, currentSessionID string) error
	RevokeOthers(ctx context.Context, userID, currentSessionID string) (int64, error)
}

// PasskeyService defines the WebAuthn credential lifecycle. Begin/Finish
// pairs are linked by a ceremony id; the cryptographic ceremony itself is
// owned by the webauthn library.
type PasskeyService interface {
	BeginRegistration(ctx context.Context, userID string) (optionsJSON []byte, ceremonyID string, err error)
	FinishRegistration(ctx context.Context, ceremonyID, name string, responseJSON []byte) (*Passkey, error)
	BeginLogin(ctx context.Context, email string) (optionsJSON []byte, ceremonyID string, err error)
	FinishLogin(ctx context.Context, ceremonyID string, responseJSON []byte, client ClientInfo) (*AuthResult, error)
	List(ctx context.Context, userID string) ([]Passkey, error)
	// Delete removes a credential owned by userID; a foreign or unknown
	// id yields ErrPasskeyNotFound regardless of whether it exists for
	// another user.
	Delete(ctx context.Context, userID, passkeyID string) error
}

// VerificationService defines emailed verification code operations
type VerificationService interface {
	Generate(ctx context.Context, email, userID string) (*VerificationRequest, error)
	Verify(ctx context.Context, email, code, userID string) (bool, error)
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines access token operations
type TokenService interface {
	GenerateAccessToken(userID, role, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}

// PropertyRepository defines property data access, scoped to an owner
type PropertyRepository interface {
	Create(ctx context.Context, property *Property) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*Property, error)
	ListByUserID(ctx context.Context, userID string) ([]Property, error)
	Update(ctx context.Context, property *Property) error
	Delete(ctx context.Context, id string) error
}

// RoomRepository defines room data access
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	FindByID(ctx context.Context, id string) (*Room, error)
	ListByPropertyID(ctx context.Context, propertyID string, status RoomStatus) ([]Room, error)
	Update(ctx context.Context, room *Room) error
	UpdateStatus(ctx context.Context, id string, status RoomStatus) error
	Delete(ctx context.Context, id string) error
}

// GuestRepository defines guest data access, scoped to an owner
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*Guest, error)
	ListByUserID(ctx context.Context, userID string) ([]Guest, error)
	Update(ctx context.Context, guest *Guest) error
	Delete(ctx context.Context, id string) error
}

// BookingRepository defines booking data access
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	FindByID(ctx context.Context, id string) (*Booking, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]Booking, error)
	Update(ctx context.Context, booking *Booking) error
	// CountOverlapping counts non-cancelled bookings of the room whose
	// [check_in, check_out) range intersects the given one, excluding
	// excludeID when non-empty.
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeID string) (int64, error)
}

// PaymentRepository defines payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	ListByBookingID(ctx context.Context, bookingID string) ([]Payment, error)
	SumCompletedByBookingID(ctx context.Context, bookingID string) (int64, error)
}

// ReportRepository defines read-only reporting aggregates
type ReportRepository interface {
	MonthlyRevenue(ctx context.Context, userID string) ([]RevenuePoint, error)
	Occupancy(ctx context.Context, userID string) ([]OccupancyReport, error)
	GuestCount(ctx context.Context, userID string) (int64, error)
}

// BookingService defines booking business logic
type BookingService interface {
	Create(ctx context.Context, userID string, booking *Booking) (*Booking, error)
	Transition(ctx context.Context, userID, bookingID string, next BookingStatus) (*Booking, error)
}

// PaymentService defines payment business logic
type PaymentService interface {
	Record(ctx context.Context, userID string, payment *Payment) (*Payment, error)
}
