package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mdestafadilah/pesan-pms/domain"
	"github.com/mdestafadilah/pesan-pms/internal/mocks"
)

// newVerificationServiceForTest backs the service with an in-process
// Redis so TTL behavior can be exercised via clock fast-forwarding.
func newVerificationServiceForTest(t *testing.T) (domain.VerificationService, *mocks.MockNotificationService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	notificationSvc := mocks.NewMockNotificationService()
	config := VerificationConfig{
		Length:       6,
		TTL:          5 * time.Minute,
		MaxAttempts:  3,
		ResendWindow: 60 * time.Second,
	}

	return NewVerificationService(notificationSvc, client, config), notificationSvc, mr
}

// sentCode digs the numeric code out of the last verification email.
func sentCode(t *testing.T, notificationSvc *mocks.MockNotificationService) string {
	t.Helper()

	if len(notificationSvc.SentEmails) == 0 {
		t.Fatal("no verification email sent")
	}
	body := notificationSvc.SentEmails[len(notificationSvc.SentEmails)-1].Body
	start := strings.Index(body, ": ")
	if start < 0 || len(body) < start+8 {
		t.Fatalf("unexpected email body: %q", body)
	}
	return body[start+2 : start+8]
}

func TestVerificationServiceImpl_GenerateAndVerify(t *testing.T) {
	svc, notificationSvc, _ := newVerificationServiceForTest(t)
	ctx := context.Background()

	req, err := svc.Generate(ctx, "budi@example.com", "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(req.Code) != 6 {
		t.Errorf("code length %d, want 6", len(req.Code))
	}
	if got := sentCode(t, notificationSvc); got != req.Code {
		t.Errorf("emailed code %q, want %q", got, req.Code)
	}

	ok, err := svc.Verify(ctx, "budi@example.com", req.Code, "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("valid code rejected")
	}

	// The code is single-use.
	if _, err := svc.Verify(ctx, "budi@example.com", req.Code, "user_1"); !errors.Is(err, domain.ErrCodeNotFound) {
		t.Errorf("second verify error %v, want %v", err, domain.ErrCodeNotFound)
	}
}

func TestVerificationServiceImpl_Verify_WrongCode(t *testing.T) {
	svc, _, _ := newVerificationServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, "budi@example.com", "user_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Verify(ctx, "budi@example.com", "000000", "user_1"); !errors.Is(err, domain.ErrCodeInvalid) {
		t.Errorf("error %v, want %v", err, domain.ErrCodeInvalid)
	}
}

func TestVerificationServiceImpl_Verify_MaxAttempts(t *testing.T) {
	svc, notificationSvc, _ := newVerificationServiceForTest(t)
	ctx := context.Background()

	req, err := svc.Generate(ctx, "budi@example.com", "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Verify(ctx, "budi@example.com", "000000", "user_1"); !errors.Is(err, domain.ErrCodeInvalid) {
			t.Fatalf("attempt %d error %v, want %v", i+1, err, domain.ErrCodeInvalid)
		}
	}

	// The fourth attempt burns the code even when it is correct.
	if _, err := svc.Verify(ctx, "budi@example.com", req.Code, "user_1"); !errors.Is(err, domain.ErrCodeMaxAttempts) {
		t.Errorf("error %v, want %v", err, domain.ErrCodeMaxAttempts)
	}
	_ = notificationSvc
}

func TestVerificationServiceImpl_Verify_Expired(t *testing.T) {
	svc, _, mr := newVerificationServiceForTest(t)
	ctx := context.Background()

	req, err := svc.Generate(ctx, "budi@example.com", "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.FastForward(6 * time.Minute)

	if _, err := svc.Verify(ctx, "budi@example.com", req.Code, "user_1"); !errors.Is(err, domain.ErrCodeNotFound) {
		t.Errorf("error %v, want %v", err, domain.ErrCodeNotFound)
	}
}

func TestVerificationServiceImpl_ResendThrottle(t *testing.T) {
	svc, _, mr := newVerificationServiceForTest(t)
	ctx := context.Background()

	if _, err := svc.Generate(ctx, "budi@example.com", "user_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Generate(ctx, "budi@example.com", "user_1"); !errors.Is(err, domain.ErrCodeResendLimit) {
		t.Fatalf("error %v, want %v", err, domain.ErrCodeResendLimit)
	}

	canResend, wait, err := svc.CanResend(ctx, "budi@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canResend {
		t.Error("resend allowed inside the throttle window")
	}
	if wait <= 0 {
		t.Errorf("wait %d, want positive", wait)
	}

	mr.FastForward(61 * time.Second)

	if _, err := svc.Generate(ctx, "budi@example.com", "user_1"); err != nil {
		t.Fatalf("resend after window: %v", err)
	}
}
