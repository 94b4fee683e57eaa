package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpVerification is an ephemeral one-time code issued for a phone number.
// A record is deleted on successful verification; expired records are left
// behind and simply fail the expiry check.
type OtpVerification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone     string    `gorm:"index;not null" json:"phone"`
	Otp       string    `gorm:"not null" json:"otp"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Verified  bool      `gorm:"default:false" json:"verified"`
}
