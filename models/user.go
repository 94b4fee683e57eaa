package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes the two sides of the marketplace.
type UserType string

const (
	UserTypeCustomer   UserType = "customer"
	UserTypeTechnician UserType = "technician"
)

// User is the identity record shared by customers and technicians.
// WalletBalance is a cached view of the wallet ledger; it is updated in the
// same database transaction as every ledger append.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone         string    `gorm:"uniqueIndex;not null" json:"phone"`
	Email         string    `json:"email,omitempty"`
	Name          string    `gorm:"not null" json:"name"`
	UserType      UserType  `gorm:"type:varchar(20);not null" json:"userType"`
	City          string    `json:"city,omitempty"`
	Pin           string    `json:"pin,omitempty"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	IsOnline      bool      `gorm:"default:false" json:"isOnline"`
	WalletBalance int       `gorm:"default:0" json:"walletBalance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserUpdateRequest carries a partial profile update. Nil fields are left
// untouched.
type UserUpdateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	City      *string `json:"city"`
	Pin       *string `json:"pin"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
	IsOnline  *bool   `json:"isOnline"`
}

// Columns translates the set fields into a column map for a partial update.
func (r UserUpdateRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.Name != nil {
		cols["name"] = *r.Name
	}
	if r.Email != nil {
		cols["email"] = *r.Email
	}
	if r.City != nil {
		cols["city"] = *r.City
	}
	if r.Pin != nil {
		cols["pin"] = *r.Pin
	}
	if r.AvatarURL != nil {
		cols["avatar_url"] = *r.AvatarURL
	}
	if r.Bio != nil {
		cols["bio"] = *r.Bio
	}
	if r.IsOnline != nil {
		cols["is_online"] = *r.IsOnline
	}
	return cols
}
