package technician

import (
	"labourmandi/models"

	"github.com/google/uuid"
)

// TechnicianRepository covers technician profiles and their portfolios.
// Profile lookups key on the owning user id, not the profile id.
type TechnicianRepository interface {
	GetProfileByUserID(userID uuid.UUID) (*models.TechnicianProfile, error)
	CreateProfile(profile *models.TechnicianProfile) error
	UpdateProfile(userID uuid.UUID, cols map[string]any) (*models.TechnicianProfile, error)
	// AppendUnlockedBy records that the given user paid to reveal the
	// technician's contact. The append is duplicate-free.
	AppendUnlockedBy(userID, unlockedBy uuid.UUID) error
	ListProfiles() ([]models.TechnicianProfile, error)

	GetPortfolioItems(technicianID uuid.UUID) ([]models.PortfolioItem, error)
	CreatePortfolioItem(item *models.PortfolioItem) error
}
