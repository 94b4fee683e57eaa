package job

import (
	"labourmandi/models"

	"github.com/google/uuid"
)

// JobRepository is the single point of access for job records.
type JobRepository interface {
	GetByID(id uuid.UUID) (*models.Job, error)
	// List returns all jobs, newest first.
	List() ([]models.Job, error)
	Create(j *models.Job) error
	UpdateStatus(id uuid.UUID, status models.JobStatus) (*models.Job, error)
}
