package job

import (
	"fmt"

	"labourmandi/models"

	"github.com/google/uuid"
)

// BidOption is one priced offer within a submission. A technician may send
// several options for the same job in one request; each becomes its own bid
// row with no shared identity afterwards.
type BidOption struct {
	Amount       int    `json:"amount" binding:"required"`
	DeliveryTime string `json:"deliveryTime"`
	Note         string `json:"note"`
	IsDefault    bool   `json:"isDefault"`
}

// PlaceBidRequest carries a bid submission. When Options is empty the
// top-level fields describe a single bid.
type PlaceBidRequest struct {
	JobID        uuid.UUID   `json:"jobId" binding:"required"`
	Amount       int         `json:"amount"`
	DeliveryTime string      `json:"deliveryTime"`
	Note         string      `json:"note"`
	IsDefault    bool        `json:"isDefault"`
	Options      []BidOption `json:"options"`
}

func (r PlaceBidRequest) options() []BidOption {
	if len(r.Options) > 0 {
		return r.Options
	}
	return []BidOption{{Amount: r.Amount, DeliveryTime: r.DeliveryTime, Note: r.Note, IsDefault: r.IsDefault}}
}

// PlaceBids validates the submission and inserts one pending bid per option.
func (s *DefaultJobService) PlaceBids(technicianID uuid.UUID, req PlaceBidRequest) ([]models.Bid, error) {
	j, err := s.Jobs.GetByID(req.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	if !s.AllowClosedJobBids && j.Status != models.JobStatusOpen {
		return nil, ErrJobClosed
	}

	options := req.options()
	defaults := 0
	for _, opt := range options {
		if opt.Amount <= 0 {
			return nil, fmt.Errorf("bid amount must be positive")
		}
		if opt.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, fmt.Errorf("at most one bid option may be marked default")
	}

	bids := make([]models.Bid, 0, len(options))
	for _, opt := range options {
		b := models.Bid{
			JobID:        req.JobID,
			TechnicianID: technicianID,
			Amount:       opt.Amount,
			DeliveryTime: opt.DeliveryTime,
			Note:         opt.Note,
			IsDefault:    opt.IsDefault,
			Status:       models.BidStatusPending,
		}
		if err := s.Bids.Create(&b); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}

// ListBids returns a job's bids joined with the bidding technicians.
func (s *DefaultJobService) ListBids(jobID uuid.UUID) ([]models.BidDetail, error) {
	return s.bidDetails(jobID)
}

// AcceptBid runs the acceptance transition: the target bid becomes accepted,
// its job moves to in_progress, and every sibling bid still pending is
// rejected. The writes happen in a single storage transaction.
func (s *DefaultJobService) AcceptBid(actorID, bidID uuid.UUID) error {
	b, err := s.Bids.GetByID(bidID)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBidNotFound
	}
	j, err := s.Jobs.GetByID(b.JobID)
	if err != nil {
		return err
	}
	if j == nil {
		return ErrJobNotFound
	}
	if j.CustomerID != actorID {
		return ErrNotOwner
	}
	return s.Bids.Accept(bidID, j.ID)
}

func (s *DefaultJobService) bidDetails(jobID uuid.UUID) ([]models.BidDetail, error) {
	bids, err := s.Bids.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	out := make([]models.BidDetail, 0, len(bids))
	for i := range bids {
		tech, err := s.Users.GetByID(bids[i].TechnicianID)
		if err != nil {
			return nil, fmt.Errorf("failed to load bidder: %w", err)
		}
		out = append(out, models.BidDetail{Bid: bids[i], Technician: tech})
	}
	return out, nil
}
