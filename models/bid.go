package models

import (
	"time"

	"github.com/google/uuid"
)

// BidStatus is the lifecycle state of a bid.
type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is a technician's priced offer against a job. A technician may submit
// several options for one job in a single request; each option becomes an
// independent row and at most one carries IsDefault. At most one bid per job
// may ever be accepted; acceptance rejects the remaining pending bids.
type Bid struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	JobID        uuid.UUID `gorm:"type:uuid;index;not null" json:"jobId"`
	TechnicianID uuid.UUID `gorm:"type:uuid;index;not null" json:"technicianId"`
	Amount       int       `gorm:"not null" json:"amount"`
	DeliveryTime string    `json:"deliveryTime,omitempty"`
	Note         string    `json:"note,omitempty"`
	IsDefault    bool      `gorm:"default:false" json:"isDefault"`
	Status       BidStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
