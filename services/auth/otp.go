package auth

import (
	"context"
	"fmt"

	"labourmandi/models"
	"labourmandi/utils"

	"go.uber.org/zap"
)

// RequestOTP issues a six digit code for the phone number. The code never
// appears in the API response; the SMS gateway delivers it out of band.
func (s *DefaultAuthService) RequestOTP(phone string) error {
	if phone == "" {
		return fmt.Errorf("phone is required")
	}
	code, err := utils.GenerateNumericOTP(6)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := s.Otps.Create(phone, code); err != nil {
		utils.GetLogger().Error("RequestOTP: failed to store code", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}
	message := fmt.Sprintf("Your Labour Mandi OTP is %s. It expires in 10 minutes.", code)
	if err := utils.SendSMS(phone, message); err != nil {
		utils.GetLogger().Error("RequestOTP: SMS send failed", zap.Error(err))
		return fmt.Errorf("failed to send OTP")
	}
	return nil
}

// VerifyOTP consumes the single-use code, marks the user online and issues a
// session. Phones that never signed up are rejected; this path does not
// auto-provision.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, phone, code string) (*models.User, string, error) {
	ok, err := s.Otps.Verify(phone, code)
	if err != nil {
		utils.GetLogger().Error("VerifyOTP: lookup failed", zap.Error(err))
		return nil, "", fmt.Errorf("failed to verify OTP")
	}
	if !ok {
		return nil, "", ErrInvalidOTP
	}

	usr, err := s.Users.GetByPhone(phone)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}
	if usr == nil {
		return nil, "", ErrUserNotFound
	}

	usr, err = s.Users.Update(usr.ID, map[string]any{"is_online": true})
	if err != nil {
		return nil, "", fmt.Errorf("failed to update user: %w", err)
	}

	token, err := s.Sessions.Create(ctx, usr.ID.String())
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}
	return usr, token, nil
}
