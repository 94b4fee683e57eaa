package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TechnicianProfile extends a User of type technician. Rating is scaled by
// ten (45 means 4.5 out of 5). WhatsappUnlockedBy holds the ids of users who
// paid the unlock fee; it only ever grows and never contains duplicates.
type TechnicianProfile struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Category           string         `gorm:"not null" json:"category"`
	Subcategories      pq.StringArray `gorm:"type:text[]" json:"subcategories"`
	YearsExperience    int            `json:"yearsExperience"`
	DailyWage          int            `json:"dailyWage"`
	HourlyWage         int            `json:"hourlyWage"`
	Rating             int            `gorm:"default:45" json:"rating"`
	Certifications     string         `json:"certifications,omitempty"`
	WhatsappNumber     string         `json:"whatsappNumber,omitempty"`
	WhatsappUnlockedBy pq.StringArray `gorm:"type:text[]" json:"whatsappUnlockedBy"`
	SocialLinks        string         `json:"socialLinks,omitempty"`
}

// HasUnlocked reports whether the given user already paid for this contact.
func (p *TechnicianProfile) HasUnlocked(userID uuid.UUID) bool {
	id := userID.String()
	for _, u := range p.WhatsappUnlockedBy {
		if u == id {
			return true
		}
	}
	return false
}

// PortfolioItem is a past work entry shown on a technician's profile.
type PortfolioItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TechnicianID uuid.UUID  `gorm:"type:uuid;index;not null" json:"technicianId"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Price        int        `json:"price,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
