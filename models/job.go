package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobStatus is the lifecycle state of a posted job.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// ValidJobStatus reports whether s is one of the known job states.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a work request posted by a customer. Status moves from open to
// in_progress when a bid is accepted; only the posting customer may move it
// to completed or cancelled.
type Job struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;index;not null" json:"customerId"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Category    string         `json:"category,omitempty"`
	City        string         `json:"city,omitempty"`
	Pin         string         `json:"pin,omitempty"`
	BudgetMin   int            `json:"budgetMin,omitempty"`
	BudgetMax   int            `json:"budgetMax,omitempty"`
	Status      JobStatus      `gorm:"type:varchar(20);default:'open'" json:"status"`
	ImageURLs   pq.StringArray `gorm:"type:text[]" json:"imageUrls"`
	CreatedAt   time.Time      `json:"createdAt"`
}
