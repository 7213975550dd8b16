package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// PasskeyServiceImpl implements domain.PasskeyService. The webauthn
// library owns the cryptographic ceremony; this service keeps the
// in-flight ceremony state and the stored credentials around it.
type PasskeyServiceImpl struct {
	webAuthn    *webauthn.WebAuthn
	userRepo    domain.UserRepository
	passkeyRepo domain.PasskeyRepository
	sessionRepo domain.SessionRepository
	ceremonies  domain.CeremonyStore
	tokenSvc    domain.TokenService
	ceremonyTTL time.Duration
	sessionTTL  time.Duration
	accessTTL   time.Duration
}

// NewPasskeyService creates a new passkey service
func NewPasskeyService(
	webAuthn *webauthn.WebAuthn,
	userRepo domain.UserRepository,
	passkeyRepo domain.PasskeyRepository,
	sessionRepo domain.SessionRepository,
	ceremonies domain.CeremonyStore,
	tokenSvc domain.TokenService,
	ceremonyTTL time.Duration,
	sessionTTL time.Duration,
	accessTTL time.Duration,
) domain.PasskeyService {
	return &PasskeyServiceImpl{
		webAuthn:    webAuthn,
		userRepo:    userRepo,
		passkeyRepo: passkeyRepo,
		sessionRepo: sessionRepo,
		ceremonies:  ceremonies,
		tokenSvc:    tokenSvc,
		ceremonyTTL: ceremonyTTL,
		sessionTTL:  sessionTTL,
		accessTTL:   accessTTL,
	}
}

// webauthnUser adapts a domain user plus its stored credentials to the
// webauthn.User interface.
type webauthnUser struct {
	user        *domain.User
	credentials []webauthn.Credential
}

func (u *webauthnUser) WebAuthnID() []byte {
	return []byte(u.user.ID)
}

func (u *webauthnUser) WebAuthnName() string {
	return u.user.Email
}

func (u *webauthnUser) WebAuthnDisplayName() string {
	return u.user.Name
}

func (u *webauthnUser) WebAuthnIcon() string {
	return ""
}

func (u *webauthnUser) WebAuthnCredentials() []webauthn.Credential {
	return u.credentials
}

// BeginRegistration implements domain.PasskeyService
func (s *PasskeyServiceImpl) BeginRegistration(ctx context.Context, userID string) ([]byte, string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	wUser, err := s.loadWebauthnUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	options := []webauthn.RegistrationOption{
		webauthn.WithResidentKeyRequirement(protocol.ResidentKeyRequirementRequired),
	}
	if len(wUser.credentials) > 0 {
		options = append(options, webauthn.WithExclusions(webauthn.Credentials(wUser.credentials).CredentialDescriptors()))
	}

	creation, sessionData, err := s.webAuthn.BeginRegistration(wUser, options...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin registration: %w", err)
	}

	ceremonyID, err := s.storeCeremony(ctx, domain.CeremonyRegistration, user.ID, sessionData)
	if err != nil {
		return nil, "", err
	}

	optionsJSON, err := json.Marshal(creation)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode registration options: %w", err)
	}

	return optionsJSON, ceremonyID, nil
}

// FinishRegistration implements domain.PasskeyService
func (s *PasskeyServiceImpl) FinishRegistration(ctx context.Context, ceremonyID, name string, responseJSON []byte) (*domain.Passkey, error) {
	ceremony, sessionData, err := s.loadCeremony(ctx, ceremonyID, domain.CeremonyRegistration)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, ceremony.UserID)
	if err != nil {
		return nil, err
	}

	wUser, err := s.loadWebauthnUser(ctx, user)
	if err != nil {
		return nil, err
	}

	parsed, err := protocol.ParseCredentialCreationResponseBytes(responseJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credential response: %w", err)
	}

	credential, err := s.webAuthn.CreateCredential(wUser, *sessionData, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to validate credential: %w", err)
	}

	credentialJSON, err := json.Marshal(credential)
	if err != nil {
		return nil, fmt.Errorf("failed to encode credential: %w", err)
	}

	passkey := &domain.Passkey{
		UserID:         user.ID,
		Name:           name,
		DeviceType:     deviceTypeFromCredential(credential),
		CredentialID:   encodeCredentialID(credential.ID),
		CredentialJSON: string(credentialJSON),
	}
	if err := s.passkeyRepo.Create(ctx, passkey); err != nil {
		return nil, fmt.Errorf("failed to store passkey: %w", err)
	}

	_ = s.ceremonies.Delete(ctx, ceremonyID)

	return passkey, nil
}

// BeginLogin implements domain.PasskeyService. An empty email starts a
// discoverable (usernameless) ceremony.
func (s *PasskeyServiceImpl) BeginLogin(ctx context.Context, email string) ([]byte, string, error) {
	var (
		assertion   *protocol.CredentialAssertion
		sessionData *webauthn.SessionData
		userID      string
	)

	if email == "" {
		var err error
		assertion, sessionData, err = s.webAuthn.BeginDiscoverableLogin()
		if err != nil {
			return nil, "", fmt.Errorf("failed to begin login: %w", err)
		}
	} else {
		user, err := s.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, "", err
		}
		wUser, err := s.loadWebauthnUser(ctx, user)
		if err != nil {
			return nil, "", err
		}
		assertion, sessionData, err = s.webAuthn.BeginLogin(wUser)
		if err != nil {
			return nil, "", fmt.Errorf("failed to begin login: %w", err)
		}
		userID = user.ID
	}

	ceremonyID, err := s.storeCeremony(ctx, domain.CeremonyLogin, userID, sessionData)
	if err != nil {
		return nil, "", err
	}

	optionsJSON, err := json.Marshal(assertion)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode login options: %w", err)
	}

	return optionsJSON, ceremonyID, nil
}

// FinishLogin implements domain.PasskeyService. A successful assertion
// opens a session exactly like password login does.
func (s *PasskeyServiceImpl) FinishLogin(ctx context.Context, ceremonyID string, responseJSON []byte, client domain.ClientInfo) (*domain.AuthResult, error) {
	_, sessionData, err := s.loadCeremony(ctx, ceremonyID, domain.CeremonyLogin)
	if err != nil {
		return nil, err
	}

	parsed, err := protocol.ParseCredentialRequestResponseBytes(responseJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credential response: %w", err)
	}

	validatedUser, credential, err := s.webAuthn.ValidatePasskeyLogin(s.discoverableUserHandler(ctx), *sessionData, parsed)
	if err != nil {
		return nil, domain.ErrCredentialUnrecognized
	}

	wUser, ok := validatedUser.(*webauthnUser)
	if !ok {
		return nil, fmt.Errorf("unexpected webauthn user type %T", validatedUser)
	}

	if err := s.touchCredential(ctx, wUser.user.ID, credential); err != nil {
		return nil, err
	}

	_ = s.ceremonies.Delete(ctx, ceremonyID)

	return openSession(ctx, s.sessionRepo, s.tokenSvc, wUser.user, client, s.sessionTTL, s.accessTTL)
}

// List implements domain.PasskeyService
func (s *PasskeyServiceImpl) List(ctx context.Context, userID string) ([]domain.Passkey, error) {
	return s.passkeyRepo.ListByUserID(ctx, userID)
}

// Delete implements domain.PasskeyService
func (s *PasskeyServiceImpl) Delete(ctx context.Context, userID, passkeyID string) error {
	passkey, err := s.passkeyRepo.FindByIDAndUser(ctx, passkeyID, userID)
	if err != nil {
		return err
	}
	return s.passkeyRepo.Delete(ctx, passkey.ID)
}

func (s *PasskeyServiceImpl) loadWebauthnUser(ctx context.Context, user *domain.User) (*webauthnUser, error) {
	passkeys, err := s.passkeyRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	credentials := make([]webauthn.Credential, 0, len(passkeys))
	for _, passkey := range passkeys {
		var credential webauthn.Credential
		if err := json.Unmarshal([]byte(passkey.CredentialJSON), &credential); err != nil {
			return nil, fmt.Errorf("failed to decode credential %s: %w", passkey.CredentialID, err)
		}
		credentials = append(credentials, credential)
	}

	return &webauthnUser{user: user, credentials: credentials}, nil
}

// discoverableUserHandler resolves the user from the authenticator's
// user handle during login validation.
func (s *PasskeyServiceImpl) discoverableUserHandler(ctx context.Context) webauthn.DiscoverableUserHandler {
	return func(_, userHandle []byte) (webauthn.User, error) {
		userID := string(userHandle)
		if userID == "" {
			return nil, domain.ErrCredentialUnrecognized
		}
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.loadWebauthnUser(ctx, user)
	}
}

// touchCredential persists the updated sign counter and last-used stamp
// after a successful assertion.
func (s *PasskeyServiceImpl) touchCredential(ctx context.Context, userID string, credential *webauthn.Credential) error {
	passkey, err := s.passkeyRepo.FindByCredentialID(ctx, encodeCredentialID(credential.ID))
	if err != nil {
		return err
	}
	if passkey.UserID != userID {
		return domain.ErrCredentialUnrecognized
	}

	credentialJSON, err := json.Marshal(credential)
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	now := time.Now()
	passkey.CredentialJSON = string(credentialJSON)
	passkey.LastUsedAt = &now
	return s.passkeyRepo.Update(ctx, passkey)
}

func (s *PasskeyServiceImpl) storeCeremony(ctx context.Context, kind domain.CeremonyKind, userID string, sessionData *webauthn.SessionData) (string, error) {
	if sessionData == nil {
		return "", fmt.Errorf("ceremony session data is required")
	}
	dataJSON, err := json.Marshal(sessionData)
	if err != nil {
		return "", fmt.Errorf("failed to encode ceremony data: %w", err)
	}

	ceremony := &domain.PasskeyCeremony{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserID:    userID,
		DataJSON:  string(dataJSON),
		ExpiresAt: time.Now().Add(s.ceremonyTTL),
	}
	if err := s.ceremonies.Put(ctx, ceremony); err != nil {
		return "", fmt.Errorf("failed to store ceremony: %w", err)
	}
	return ceremony.ID, nil
}

func (s *PasskeyServiceImpl) loadCeremony(ctx context.Context, ceremonyID string, kind domain.CeremonyKind) (*domain.PasskeyCeremony, *webauthn.SessionData, error) {
	ceremony, err := s.ceremonies.Get(ctx, ceremonyID)
	if err != nil {
		return nil, nil, err
	}
	if ceremony.Kind != kind {
		return nil, nil, domain.ErrCeremonyKindMismatch
	}

	var sessionData webauthn.SessionData
	if err := json.Unmarshal([]byte(ceremony.DataJSON), &sessionData); err != nil {
		return nil, nil, fmt.Errorf("failed to decode ceremony data: %w", err)
	}
	return ceremony, &sessionData, nil
}

// deviceTypeFromCredential maps the credential's backup eligibility to
// the device type labels clients render.
func deviceTypeFromCredential(credential *webauthn.Credential) string {
	if credential.Flags.BackupEligible {
		return "multiDevice"
	}
	return "singleDevice"
}

func encodeCredentialID(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}
