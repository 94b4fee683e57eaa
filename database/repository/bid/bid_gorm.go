package bid

import (
	"errors"
	"fmt"

	"labourmandi/database"
	"labourmandi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBidRepo implements BidRepository on the shared Postgres handle.
type GormBidRepo struct {
	DB *gorm.DB
}

func NewGormBidRepo() *GormBidRepo {
	return &GormBidRepo{DB: database.DB}
}

func (r *GormBidRepo) GetByID(id uuid.UUID) (*models.Bid, error) {
	var b models.Bid
	err := r.DB.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bid %s: %w", id, err)
	}
	return &b, nil
}

func (r *GormBidRepo) ListByJob(jobID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.DB.Order("created_at ASC").Find(&bids, "job_id = ?", jobID).Error; err != nil {
		return nil, fmt.Errorf("failed to list bids for job %s: %w", jobID, err)
	}
	return bids, nil
}

func (r *GormBidRepo) ListByTechnician(technicianID uuid.UUID) ([]models.Bid, error) {
	var bids []models.Bid
	if err := r.DB.Order("created_at DESC").Find(&bids, "technician_id = ?", technicianID).Error; err != nil {
		return nil, fmt.Errorf("failed to list bids for technician %s: %w", technicianID, err)
	}
	return bids, nil
}

func (r *GormBidRepo) Create(b *models.Bid) error {
	if err := r.DB.Create(b).Error; err != nil {
		return fmt.Errorf("failed to create bid: %w", err)
	}
	return nil
}

func (r *GormBidRepo) Accept(bidID, jobID uuid.UUID) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bid{}).
			Where("id = ?", bidID).
			Update("status", models.BidStatusAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			Update("status", models.JobStatusInProgress).Error; err != nil {
			return err
		}
		return tx.Model(&models.Bid{}).
			Where("job_id = ? AND id <> ? AND status = ?", jobID, bidID, models.BidStatusPending).
			Update("status", models.BidStatusRejected).Error
	})
	if err != nil {
		return fmt.Errorf("failed to accept bid %s: %w", bidID, err)
	}
	return nil
}
