package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// VerificationServiceImpl implements domain.VerificationService using
// Redis persistence. Codes are emailed and expire on their own.
type VerificationServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          VerificationConfig
}

type VerificationConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewVerificationService creates a new Redis-based verification service
func NewVerificationService(notificationSvc domain.NotificationService, redisClient *redis.Client, config VerificationConfig) domain.VerificationService {
	return &VerificationServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Generate implements domain.VerificationService
func (s *VerificationServiceImpl) Generate(ctx context.Context, email, userID string) (*domain.VerificationRequest, error) {
	codeKey := fmt.Sprintf("verify:%s:%s", email, userID)
	resendKey := fmt.Sprintf("verify:res:%s", email)
	attemptsKey := fmt.Sprintf("verify:att:%s:%s", email, userID)

	if canResend, waitTime, _ := s.CanResend(ctx, email); !canResend {
		return nil, fmt.Errorf("%w: wait %d seconds before requesting a new code", domain.ErrCodeResendLimit, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.redisClient.Set(ctx, codeKey, code, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return nil, fmt.Errorf("failed to set resend throttle: %w", err)
	}

	req := &domain.VerificationRequest{
		Identifier: email,
		Code:       code,
		UserID:     userID,
		ExpiresAt:  time.Now().Add(s.config.TTL),
		Attempts:   0,
	}

	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, "Verify your email", body); err != nil {
		s.redisClient.Del(ctx, codeKey, attemptsKey, resendKey)
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	return req, nil
}

// Verify implements domain.VerificationService
func (s *VerificationServiceImpl) Verify(ctx context.Context, email, code, userID string) (bool, error) {
	codeKey := fmt.Sprintf("verify:%s:%s", email, userID)
	attemptsKey := fmt.Sprintf("verify:att:%s:%s", email, userID)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, codeKey, attemptsKey)
		return false, domain.ErrCodeMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, codeKey).Result()
	if err == redis.Nil {
		return false, domain.ErrCodeNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get verification code: %w", err)
	}

	if storedCode != code {
		return false, domain.ErrCodeInvalid
	}

	s.redisClient.Del(ctx, codeKey, attemptsKey)

	return true, nil
}

// CanResend implements domain.VerificationService
func (s *VerificationServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("verify:res:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *VerificationServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
