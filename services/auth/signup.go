package auth

import (
	"context"
	"fmt"

	"labourmandi/models"
	"labourmandi/utils"

	"go.uber.org/zap"
)

// Signup creates the user (plus the technician profile when applicable) and
// issues a session. The phone-uniqueness check runs before the insert; the
// unique index on the phone column backstops a race between two signups.
func (s *DefaultAuthService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	if req.UserType != models.UserTypeCustomer && req.UserType != models.UserTypeTechnician {
		return nil, "", fmt.Errorf("unknown user type %q", req.UserType)
	}

	existing, err := s.Users.GetByPhone(req.Phone)
	if err != nil {
		utils.GetLogger().Error("Signup: phone lookup failed", zap.Error(err))
		return nil, "", fmt.Errorf("signup failed, please try again")
	}
	if existing != nil {
		return nil, "", ErrPhoneTaken
	}

	usr := models.User{
		Phone:         req.Phone,
		Name:          req.Name,
		Email:         req.Email,
		UserType:      req.UserType,
		City:          req.City,
		Pin:           req.Pin,
		AvatarURL:     AvatarURL(req.Name),
		Bio:           req.Bio,
		IsOnline:      true,
		WalletBalance: s.SignupBonus,
	}
	if err := s.Users.Create(&usr); err != nil {
		utils.GetLogger().Error("Signup: user insert failed", zap.Error(err))
		return nil, "", fmt.Errorf("signup failed, please try again")
	}

	if req.UserType == models.UserTypeTechnician && req.Category != "" {
		whatsapp := req.WhatsappNumber
		if whatsapp == "" {
			whatsapp = req.Phone
		}
		profile := models.TechnicianProfile{
			UserID:          usr.ID,
			Category:        req.Category,
			Subcategories:   req.Subcategories,
			YearsExperience: req.YearsExperience,
			DailyWage:       req.DailyWage,
			HourlyWage:      req.HourlyWage,
			Rating:          45,
			Certifications:  req.Certifications,
			WhatsappNumber:  whatsapp,
		}
		if err := s.Technicians.CreateProfile(&profile); err != nil {
			utils.GetLogger().Error("Signup: technician profile insert failed", zap.Error(err))
			return nil, "", fmt.Errorf("signup failed, please try again")
		}
	}

	token, err := s.Sessions.Create(ctx, usr.ID.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return &usr, token, nil
}
