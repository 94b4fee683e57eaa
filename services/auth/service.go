package auth

import (
	"context"
	"errors"
	"strings"

	otpRepo "labourmandi/database/repository/otp"
	technicianRepo "labourmandi/database/repository/technician"
	userRepo "labourmandi/database/repository/user"
	"labourmandi/models"
	"labourmandi/utils"
)

var (
	// ErrPhoneTaken signals a signup with an already registered phone number.
	ErrPhoneTaken = errors.New("user with this phone number already exists")
	// ErrUserNotFound signals an OTP sign-in for a phone that never signed up.
	ErrUserNotFound = errors.New("user not found, please sign up first")
	// ErrInvalidOTP signals a code that does not match or has expired.
	ErrInvalidOTP = errors.New("invalid or expired OTP")
	// ErrInvalidToken signals a Google ID token that failed verification.
	ErrInvalidToken = errors.New("invalid identity token")
)

// SignupRequest carries the full profile supplied at account creation.
// Technician fields are honoured only when UserType is technician.
type SignupRequest struct {
	UserType        models.UserType `json:"userType" binding:"required"`
	Phone           string          `json:"phone" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email"`
	City            string          `json:"city"`
	Pin             string          `json:"pin"`
	Bio             string          `json:"bio"`
	Category        string          `json:"category"`
	Subcategories   []string        `json:"subcategories"`
	YearsExperience int             `json:"yearsExperience"`
	DailyWage       int             `json:"dailyWage"`
	HourlyWage      int             `json:"hourlyWage"`
	Certifications  string          `json:"certifications"`
	WhatsappNumber  string          `json:"whatsappNumber"`
}

// AuthService covers every path that ends in a session token.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, string, error)
	RequestOTP(phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.User, string, error)
	GoogleSignIn(ctx context.Context, idToken string) (*models.User, string, error)
	SignOut(ctx context.Context, token string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users       userRepo.UserRepository
	Technicians technicianRepo.TechnicianRepository
	Otps        otpRepo.OtpRepository
	Sessions    utils.SessionStore
	Verifier    GoogleTokenVerifier
	// SignupBonus is the promotional wallet credit granted to new accounts.
	SignupBonus int
	// Audience is the expected Google OAuth client id; empty skips the check.
	Audience string
}

// AvatarURL derives a deterministic placeholder avatar for a display name.
func AvatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strings.ReplaceAll(seed, " ", "") + "&scale=80"
}

func (s *DefaultAuthService) SignOut(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}
