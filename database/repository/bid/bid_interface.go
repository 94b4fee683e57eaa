package bid

import (
	"labourmandi/models"

	"github.com/google/uuid"
)

// BidRepository is the single point of access for bid records. Accept runs
// the whole acceptance transition in one database transaction so that the
// one-accepted-bid-per-job invariant holds even when two acceptances race.
type BidRepository interface {
	GetByID(id uuid.UUID) (*models.Bid, error)
	ListByJob(jobID uuid.UUID) ([]models.Bid, error)
	ListByTechnician(technicianID uuid.UUID) ([]models.Bid, error)
	Create(b *models.Bid) error
	// Accept marks the target bid accepted, moves its job to in_progress and
	// rejects every other bid on the job still pending. Bids already settled
	// are left untouched.
	Accept(bidID, jobID uuid.UUID) error
}
