package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/internal/http/handlers"
	"github.com/mdestafadilah/pesan-pms/internal/http/middleware"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Auth     *handlers.AuthHandlers
	Session  *handlers.SessionHandlers
	Passkey  *handlers.PasskeyHandlers
	Property *handlers.PropertyHandlers
	Room     *handlers.RoomHandlers
	Guest    *handlers.GuestHandlers
	Booking  *handlers.BookingHandlers
	Payment  *handlers.PaymentHandlers
	Report   *handlers.ReportHandlers
	Policy   *handlers.PolicyHandlers
}

func BuildRouter(h Handlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/verify-email", h.Auth.VerifyEmail)
	auth.POST("/verify-email/resend", h.Auth.ResendCode)
	auth.POST("/password/forgot", h.Auth.ForgotPassword)
	auth.POST("/password/reset", h.Auth.ResetPassword)
	auth.POST("/passkey/login/begin", h.Passkey.BeginLogin)
	auth.POST("/passkey/login/finish", h.Passkey.FinishLogin)

	// Session-bearing routes. The middleware rejects tokens whose
	// session row is gone, so revocation takes effect immediately.
	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", h.Auth.Me)
	v.POST("/auth/logout", h.Auth.Logout)
	v.POST("/auth/password", h.Auth.ChangePassword)
	v.GET("/auth/sessions", h.Session.List)
	v.DELETE("/auth/sessions/:session_id", h.Session.Revoke)
	v.POST("/auth/sessions/revoke-others", h.Session.RevokeOthers)

	v.POST("/auth/passkey/register/begin", h.Passkey.BeginRegistration)
	v.POST("/auth/passkey/register/finish", h.Passkey.FinishRegistration)
	v.GET("/api/passkeys", h.Passkey.List)
	v.DELETE("/api/passkeys/:id", h.Passkey.Delete)

	api := r.Group("/api").Use(jwtmw.WithJWT(), cb.Enforce())
	api.POST("/properties", h.Property.Create)
	api.GET("/properties", h.Property.List)
	api.GET("/properties/:id", h.Property.Get)
	api.PUT("/properties/:id", h.Property.Update)
	api.DELETE("/properties/:id", h.Property.Delete)

	api.POST("/rooms", h.Room.Create)
	api.GET("/rooms", h.Room.List)
	api.GET("/rooms/:id", h.Room.Get)
	api.PUT("/rooms/:id", h.Room.Update)
	api.DELETE("/rooms/:id", h.Room.Delete)

	api.POST("/guests", h.Guest.Create)
	api.GET("/guests", h.Guest.List)
	api.GET("/guests/:id", h.Guest.Get)
	api.PUT("/guests/:id", h.Guest.Update)
	api.DELETE("/guests/:id", h.Guest.Delete)

	api.POST("/bookings", h.Booking.Create)
	api.GET("/bookings", h.Booking.List)
	api.GET("/bookings/:id", h.Booking.Get)
	api.POST("/bookings/:id/transition", h.Booking.Transition)

	api.POST("/payments", h.Payment.Record)
	api.GET("/payments", h.Payment.List)

	api.GET("/reports/revenue", h.Report.Revenue)
	api.GET("/reports/occupancy", h.Report.Occupancy)
	api.GET("/reports/guests", h.Report.Guests)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/policies", h.Policy.List)
	adm.POST("/policies", h.Policy.Add)
	adm.DELETE("/policies", h.Policy.Remove)

	return r
}
