package handlers

import (
	"errors"
	"net/http"

	"labourmandi/models"
	"labourmandi/services/auth"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the signup, OTP and Google sign-in endpoints.
type AuthHandler struct {
	Svc auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// authResponse is the user record with the session token attached, matching
// the response shape of every sign-in path.
type authResponse struct {
	models.User
	Token string `json:"token"`
}

// SignupHandler creates a new account and session.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	usr, token, err := h.Svc.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrPhoneTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this phone number already exists"})
			return
		}
		logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	c.JSON(http.StatusOK, authResponse{User: *usr, Token: token})
}

// SignInHandler issues an OTP for the phone number. The code itself never
// appears in the response.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Svc.RequestOTP(req.Phone); err != nil {
		logger.Error("OTP issuance failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your phone"})
}

// VerifyOTPHandler verifies the code and signs the user in.
func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Phone string `json:"phone" binding:"required"`
		Otp   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	usr, token, err := h.Svc.VerifyOTP(c.Request.Context(), req.Phone, req.Otp)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidOTP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		case errors.Is(err, auth.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found. Please sign up first."})
		default:
			logger.Error("OTP verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify OTP"})
		}
		return
	}
	c.JSON(http.StatusOK, authResponse{User: *usr, Token: token})
}

// GoogleSignInHandler verifies a Google ID token and signs the user in,
// provisioning a customer account on first sight.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "ID token required", err.Error())
		return
	}

	usr, token, err := h.Svc.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
			return
		}
		logger.Error("Google sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in with Google"})
		return
	}
	c.JSON(http.StatusOK, authResponse{User: *usr, Token: token})
}

// SignOutHandler drops the caller's session.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	token := c.GetString("token")
	if err := h.Svc.SignOut(c.Request.Context(), token); err != nil {
		getLogger(c).Error("Sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
