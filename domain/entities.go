package domain

import "time"

// User represents an identity in the system. A user owns sessions,
// accounts and passkeys, plus the PMS records scoped to them.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         string
	Role          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Account links a user to a credential provider. Email/password login is
// itself an account row with provider id "credential" carrying the hash.
type Account struct {
	ID           string
	UserID       string
	ProviderID   string
	AccountID    string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a server-tracked authenticated context, one per active
// device/browser. The token is the unit of revocation; "current" is
// determined by token match against the caller's claims, never stored.
type Session struct {
	ID        string
	Token     string
	UserID    string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// SessionInfo is a session decorated for display: device/browser labels
// derived from the user agent and the computed current flag.
type SessionInfo struct {
	Session
	DeviceName  string
	BrowserName string
	IsCurrent   bool
}

// Passkey is a WebAuthn credential registered by a user. The credential
// material is opaque JSON owned by the webauthn library; passkeys are
// never implicitly expired.
type Passkey struct {
	ID             string
	UserID         string
	Name           string
	DeviceType     string
	CredentialID   string
	CredentialJSON string
	CreatedAt      time.Time
	LastUsedAt     *time.Time
}

// AuthRequest represents email/password credentials.
type AuthRequest struct {
	Email    string
	Password string
}

// AuthResult represents authentication outcome.
type AuthResult struct {
	User        *User
	AccessToken string
	SessionID   string
	ExpiresIn   int64
}

// ClientInfo carries the request attributes bound to a new session.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// VerificationRequest represents an emailed verification code.
type VerificationRequest struct {
	Identifier string
	Code       string
	UserID     string
	ExpiresAt  time.Time
	Attempts   int
}

// TokenClaims represents JWT access token claims.
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Property is a hotel/homestay/villa managed by a user.
type Property struct {
	ID          string
	UserID      string
	Name        string
	Type        PropertyType
	Address     string
	City        string
	State       string
	Country     string
	ZipCode     string
	Phone       string
	Email       string
	Website     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Room belongs to a property. Rate is in cents.
type Room struct {
	ID          string
	PropertyID  string
	Name        string
	Type        string
	Capacity    int
	Rate        int64
	Description string
	Amenities   string
	Status      RoomStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Guest is a person bookings are made for, scoped to the managing user.
type Guest struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	Country   string
	ZipCode   string
	IDType    string
	IDNumber  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booking reserves a room for a guest over a date range. Dates are
// inclusive check-in, exclusive check-out.
type Booking struct {
	ID            string
	PropertyID    string
	RoomID        string
	GuestID       string
	CheckIn       time.Time
	CheckOut      time.Time
	Adults        int
	Children      int
	TotalAmount   int64
	PaymentStatus PaymentStatus
	BookingStatus BookingStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Payment records money received against a booking. Amount is in cents.
type Payment struct {
	ID            string
	BookingID     string
	Amount        int64
	Method        PaymentMethod
	Status        PaymentState
	TransactionID string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RevenuePoint is one month of completed payment totals.
type RevenuePoint struct {
	Month   string
	Revenue int64
}

// OccupancyReport summarizes room usage for a property.
type OccupancyReport struct {
	PropertyID    string
	TotalRooms    int64
	OccupiedRooms int64
	ReservedRooms int64
}
