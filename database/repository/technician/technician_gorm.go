package technician

import (
	"errors"
	"fmt"

	"labourmandi/database"
	"labourmandi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTechnicianRepo implements TechnicianRepository on the shared Postgres handle.
type GormTechnicianRepo struct {
	DB *gorm.DB
}

func NewGormTechnicianRepo() *GormTechnicianRepo {
	return &GormTechnicianRepo{DB: database.DB}
}

func (r *GormTechnicianRepo) GetProfileByUserID(userID uuid.UUID) (*models.TechnicianProfile, error) {
	var profile models.TechnicianProfile
	err := r.DB.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve technician profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *GormTechnicianRepo) CreateProfile(profile *models.TechnicianProfile) error {
	if err := r.DB.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create technician profile: %w", err)
	}
	return nil
}

func (r *GormTechnicianRepo) UpdateProfile(userID uuid.UUID, cols map[string]any) (*models.TechnicianProfile, error) {
	if len(cols) > 0 {
		res := r.DB.Model(&models.TechnicianProfile{}).Where("user_id = ?", userID).Updates(cols)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update technician profile for user %s: %w", userID, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.GetProfileByUserID(userID)
}

func (r *GormTechnicianRepo) AppendUnlockedBy(userID, unlockedBy uuid.UUID) error {
	// array_append guarded by a containment check keeps the list duplicate-free
	// even when two unlocks race.
	err := r.DB.Model(&models.TechnicianProfile{}).
		Where("user_id = ? AND NOT (? = ANY(COALESCE(whatsapp_unlocked_by, ARRAY[]::text[])))", userID, unlockedBy.String()).
		Update("whatsapp_unlocked_by", gorm.Expr("array_append(whatsapp_unlocked_by, ?)", unlockedBy.String())).Error
	if err != nil {
		return fmt.Errorf("failed to record unlock for technician %s: %w", userID, err)
	}
	return nil
}

func (r *GormTechnicianRepo) ListProfiles() ([]models.TechnicianProfile, error) {
	var profiles []models.TechnicianProfile
	if err := r.DB.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list technician profiles: %w", err)
	}
	return profiles, nil
}

func (r *GormTechnicianRepo) GetPortfolioItems(technicianID uuid.UUID) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := r.DB.Find(&items, "technician_id = ?", technicianID).Error; err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	return items, nil
}

func (r *GormTechnicianRepo) CreatePortfolioItem(item *models.PortfolioItem) error {
	if err := r.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return nil
}
