package job

import (
	"errors"
	"fmt"

	"labourmandi/database"
	"labourmandi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobRepo implements JobRepository on the shared Postgres handle.
type GormJobRepo struct {
	DB *gorm.DB
}

func NewGormJobRepo() *GormJobRepo {
	return &GormJobRepo{DB: database.DB}
}

func (r *GormJobRepo) GetByID(id uuid.UUID) (*models.Job, error) {
	var j models.Job
	err := r.DB.First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve job %s: %w", id, err)
	}
	return &j, nil
}

func (r *GormJobRepo) List() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (r *GormJobRepo) Create(j *models.Job) error {
	if err := r.DB.Create(j).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *GormJobRepo) UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	res := r.DB.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update job %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}
