package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc   domain.AuthService
	verifySvc domain.VerificationService
	userRepo  domain.UserRepository
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, verifySvc domain.VerificationService, userRepo domain.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authSvc:   authSvc,
		verifySvc: verifySvc,
		userRepo:  userRepo,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest represents email verification request
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// ResendCodeRequest represents a verification code resend request
type ResendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// ForgotPasswordRequest represents a password reset code request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents a code-backed password reset
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func clientInfo(c *gin.Context) domain.ClientInfo {
	return domain.ClientInfo{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	audit(domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).WithEmail(user.Email))

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "User registered successfully. Please verify your email address.",
			"user_id": user.ID,
		},
	})
}

// Login handles email/password login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client := clientInfo(c)
	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password, client)
	if err != nil {
		audit(domain.NewAuditEvent(domain.UserLoginFailureEvent, "").WithEmail(req.Email).WithClient(client).WithError(err))
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case domain.ErrEmailNotVerified:
			c.JSON(http.StatusForbidden, gin.H{"error": "Email not verified"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.UserLoginEvent, result.User.ID).WithEmail(result.User.Email).WithSession(result.SessionID).WithClient(client))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"session_id":   result.SessionID,
			"user": gin.H{
				"id":    result.User.ID,
				"name":  result.User.Name,
				"email": result.User.Email,
				"role":  result.User.Role,
			},
		},
	})
}

// VerifyEmail handles email verification
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrCodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Verification code not found"})
		case domain.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code has expired"})
		case domain.ErrCodeMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum attempts exceeded"})
		case domain.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid verification code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email verification failed"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.EmailVerifiedEvent, "").WithEmail(req.Email))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Email verified successfully",
		},
	})
}

// ResendCode handles verification code resend
func (h *AuthHandlers) ResendCode(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find user"})
		return
	}

	if _, err := h.verifySvc.Generate(c.Request.Context(), req.Email, user.ID); err != nil {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Verification code sent",
		},
	})
}

// Me handles getting user profile (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID.(string))
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"role":           user.Role,
			"email_verified": user.EmailVerified,
			"image":          user.Image,
			"created_at":     user.CreatedAt,
			"updated_at":     user.UpdatedAt,
		},
	})
}

// ForgotPassword handles a password reset code request. The response
// does not reveal whether the email is registered.
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if user, err := h.userRepo.FindByEmail(c.Request.Context(), req.Email); err == nil {
		if _, err := h.verifySvc.Generate(c.Request.Context(), req.Email, user.ID); err != nil {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting a new code"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "If the email is registered, a reset code has been sent",
		},
	})
}

// ResetPassword handles a code-backed password reset
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound, domain.ErrCodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Reset code not found"})
		case domain.ErrCodeExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reset code has expired"})
		case domain.ErrCodeMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum attempts exceeded"})
		case domain.ErrCodeInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reset code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.PasswordResetEvent, "").WithEmail(req.Email))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Password reset successfully",
		},
	})
}

// ChangePassword handles a password change (requires authentication)
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		case domain.ErrAccountNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		}
		return
	}

	audit(domain.NewAuditEvent(domain.PasswordChangedEvent, userID))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Password changed successfully",
		},
	})
}

// Logout handles user logout (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	userID := c.GetString("user_id")
	audit(domain.NewAuditEvent(domain.UserLogoutEvent, userID).WithSession(sessionID.(string)))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}
