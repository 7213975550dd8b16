package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/mdestafadilah/pesan-pms/internal/config"
	httpx "github.com/mdestafadilah/pesan-pms/internal/http"
	"github.com/mdestafadilah/pesan-pms/internal/http/handlers"
	"github.com/mdestafadilah/pesan-pms/internal/http/middleware"
	"github.com/mdestafadilah/pesan-pms/internal/infrastructure/auth"
	"github.com/mdestafadilah/pesan-pms/internal/infrastructure/database"
	"github.com/mdestafadilah/pesan-pms/internal/infrastructure/notifications"
	"github.com/mdestafadilah/pesan-pms/internal/infrastructure/repositories"
	"github.com/mdestafadilah/pesan-pms/internal/services"
)

// Run wires the whole application together and starts the HTTP server.
func Run(cfg *config.Config) error {
	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}
	webAuthn, err := auth.NewWebAuthn(cfg.WebAuthnRPID, cfg.WebAuthnRPDisplayName, cfg.WebAuthnRPOrigins)
	if err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	notificationSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	accountRepo := repositories.NewAccountRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(gdb)
	passkeyRepo := repositories.NewPasskeyRepository(gdb)
	propertyRepo := repositories.NewPropertyRepository(gdb)
	roomRepo := repositories.NewRoomRepository(gdb)
	guestRepo := repositories.NewGuestRepository(gdb)
	bookingRepo := repositories.NewBookingRepository(gdb)
	paymentRepo := repositories.NewPaymentRepository(gdb)
	reportRepo := repositories.NewReportRepository(gdb)
	ceremonies := repositories.NewCeremonyStore(rdb, cfg.CeremonyTTL)

	// Domain services
	verifyConfig := services.VerificationConfig{
		Length:       cfg.VerificationLength,
		TTL:          cfg.VerificationTTL,
		MaxAttempts:  cfg.VerificationMaxAttempts,
		ResendWindow: cfg.VerificationResendWindow,
	}
	verifySvc := services.NewVerificationService(notificationSvc, rdb, verifyConfig)
	authSvc := services.NewAuthService(userRepo, accountRepo, sessionRepo, passwordSvc, tokenSvc, verifySvc, cfg.SessionTTL, cfg.AccessTTL)
	sessionSvc := services.NewSessionService(sessionRepo)
	passkeySvc := services.NewPasskeyService(webAuthn, userRepo, passkeyRepo, sessionRepo, ceremonies, tokenSvc, cfg.CeremonyTTL, cfg.SessionTTL, cfg.AccessTTL)
	bookingSvc := services.NewBookingService(bookingRepo, propertyRepo, roomRepo, guestRepo, notificationSvc)
	paymentSvc := services.NewPaymentService(paymentRepo, bookingRepo, propertyRepo)
	policySvc := services.NewPolicyService(cas.E)

	// Handlers
	h := httpx.Handlers{
		Auth:     handlers.NewAuthHandlers(authSvc, verifySvc, userRepo),
		Session:  handlers.NewSessionHandlers(sessionSvc),
		Passkey:  handlers.NewPasskeyHandlers(passkeySvc),
		Property: handlers.NewPropertyHandlers(propertyRepo),
		Room:     handlers.NewRoomHandlers(roomRepo, propertyRepo),
		Guest:    handlers.NewGuestHandlers(guestRepo),
		Booking:  handlers.NewBookingHandlers(bookingSvc, bookingRepo, propertyRepo),
		Payment:  handlers.NewPaymentHandlers(paymentSvc, paymentRepo, bookingRepo, propertyRepo),
		Report:   handlers.NewReportHandlers(reportRepo),
		Policy:   handlers.NewPolicyHandlers(policySvc),
	}

	// Middleware
	jwtMW := middleware.NewAuthMW(tokenSvc, sessionRepo)
	casbinMW := middleware.NewCasbinMW(cas.E, cfg.OwnershipRules)

	r := httpx.BuildRouter(h, jwtMW, casbinMW)

	// Expired session rows are only rejected lazily on lookup; sweep
	// them periodically so the table does not grow unbounded.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessionRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("session sweep failed: %v", err)
			}
		}
	}()

	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy("role_admin", "/*", "(GET|POST|PUT|DELETE)")
		cas.E.AddPolicy("role_user", "/auth/*", "(GET|POST|DELETE)")
		cas.E.AddPolicy("role_user", "/api/*", "(GET|POST|PUT|DELETE)")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
