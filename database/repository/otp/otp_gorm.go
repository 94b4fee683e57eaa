package otp

import (
	"errors"
	"fmt"
	"time"

	"labourmandi/database"
	"labourmandi/models"

	"gorm.io/gorm"
)

// TTL is how long an issued code stays valid.
const TTL = 10 * time.Minute

// GormOtpRepo implements OtpRepository on the shared Postgres handle.
type GormOtpRepo struct {
	DB *gorm.DB
}

func NewGormOtpRepo() *GormOtpRepo {
	return &GormOtpRepo{DB: database.DB}
}

func (r *GormOtpRepo) Create(phone, code string) error {
	rec := models.OtpVerification{
		Phone:     phone,
		Otp:       code,
		ExpiresAt: time.Now().Add(TTL),
	}
	if err := r.DB.Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

func (r *GormOtpRepo) Verify(phone, code string) (bool, error) {
	var rec models.OtpVerification
	err := r.DB.First(&rec, "phone = ? AND otp = ?", phone, code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up OTP: %w", err)
	}
	if time.Now().After(rec.ExpiresAt) {
		return false, nil
	}
	if err := r.DB.Delete(&models.OtpVerification{}, "id = ?", rec.ID).Error; err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}
	return true, nil
}
