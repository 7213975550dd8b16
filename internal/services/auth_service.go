package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// CredentialProviderID marks the account row carrying the password hash.
const CredentialProviderID = "credential"

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	accountRepo domain.AccountRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	verifySvc   domain.VerificationService
	sessionTTL  time.Duration
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	accountRepo domain.AccountRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	verifySvc domain.VerificationService,
	sessionTTL time.Duration,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		verifySvc:   verifySvc,
		sessionTTL:  sessionTTL,
		accessTTL:   accessTTL,
	}
}

// Register implements domain.AuthService. The password hash lives on the
// credential account row, not the user.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:  name,
		Email: email,
		Role:  "user",
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	account := &domain.Account{
		UserID:       user.ID,
		ProviderID:   CredentialProviderID,
		AccountID:    email,
		PasswordHash: hashedPassword,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create credential account: %w", err)
	}

	if _, err := s.verifySvc.Generate(ctx, email, user.ID); err != nil {
		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. Each successful login opens a new
// session bound to the caller's client info.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string, client domain.ClientInfo) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accountRepo.FindByUserAndProvider(ctx, user.ID, CredentialProviderID)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	return openSession(ctx, s.sessionRepo, s.tokenSvc, user, client, s.sessionTTL, s.accessTTL)
}

// openSession creates a session and mints its access token. Password and
// passkey login share it so both paths produce identical results.
func openSession(ctx context.Context, sessionRepo domain.SessionRepository, tokenSvc domain.TokenService, user *domain.User, client domain.ClientInfo, sessionTTL, accessTTL time.Duration) (*domain.AuthResult, error) {
	session := &domain.Session{
		UserID:    user.ID,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		SessionID:   session.ID,
		ExpiresIn:   int64(accessTTL.Seconds()),
	}, nil
}

// VerifyEmail implements domain.AuthService
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, email, code string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ok, err := s.verifySvc.Verify(ctx, email, code, user.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCodeInvalid
	}

	return s.userRepo.MarkEmailVerified(ctx, user.ID)
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ChangePassword implements domain.AuthService. The current password
// must verify before the hash is replaced.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	account, err := s.accountRepo.FindByUserAndProvider(ctx, userID, CredentialProviderID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(account.PasswordHash, oldPassword) {
		return domain.ErrInvalidCredentials
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword)
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ok, err := s.verifySvc.Verify(ctx, email, code, user.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCodeInvalid
	}

	account, err := s.accountRepo.FindByUserAndProvider(ctx, user.ID, CredentialProviderID)
	if err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accountRepo.UpdatePassword(ctx, account.ID, hashedPassword)
}
