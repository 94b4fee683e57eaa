package job

import (
	"errors"
	"fmt"

	bidRepo "labourmandi/database/repository/bid"
	jobRepo "labourmandi/database/repository/job"
	userRepo "labourmandi/database/repository/user"
	"labourmandi/models"

	"github.com/google/uuid"
)

var (
	// ErrJobNotFound signals an operation against an unknown job id.
	ErrJobNotFound = errors.New("job not found")
	// ErrBidNotFound signals an operation against an unknown bid id.
	ErrBidNotFound = errors.New("bid not found")
	// ErrNotOwner signals an actor touching a job they did not post.
	ErrNotOwner = errors.New("only the job's customer may do this")
	// ErrJobClosed signals a bid against a job no longer open, when closed-job
	// bidding is disabled.
	ErrJobClosed = errors.New("job is no longer open for bids")
	// ErrInvalidStatus signals a status value outside the job lifecycle.
	ErrInvalidStatus = errors.New("invalid job status")
)

// CreateJobRequest carries a new job posting.
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
	Pin         string   `json:"pin"`
	BudgetMin   int      `json:"budgetMin"`
	BudgetMax   int      `json:"budgetMax"`
	ImageURLs   []string `json:"imageUrls"`
}

// JobService covers the job and bid lifecycle.
type JobService interface {
	ListJobs() ([]models.JobDetail, error)
	GetJob(id uuid.UUID) (*models.JobDetail, error)
	CreateJob(customerID uuid.UUID, req CreateJobRequest) (*models.Job, error)
	UpdateStatus(actorID, jobID uuid.UUID, status models.JobStatus) (*models.Job, error)

	PlaceBids(technicianID uuid.UUID, req PlaceBidRequest) ([]models.Bid, error)
	ListBids(jobID uuid.UUID) ([]models.BidDetail, error)
	AcceptBid(actorID, bidID uuid.UUID) error
}

// DefaultJobService is the production implementation.
type DefaultJobService struct {
	Jobs  jobRepo.JobRepository
	Bids  bidRepo.BidRepository
	Users userRepo.UserRepository
	// AllowClosedJobBids keeps the original behaviour of accepting bids on
	// jobs in any state. Disabling it rejects bids on non-open jobs.
	AllowClosedJobBids bool
}

// ListJobs returns all jobs newest first, each joined with its customer and
// bids (bidders included).
func (s *DefaultJobService) ListJobs() ([]models.JobDetail, error) {
	jobs, err := s.Jobs.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.JobDetail, 0, len(jobs))
	for i := range jobs {
		detail, err := s.assemble(jobs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *detail)
	}
	return out, nil
}

func (s *DefaultJobService) GetJob(id uuid.UUID) (*models.JobDetail, error) {
	j, err := s.Jobs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	return s.assemble(*j)
}

func (s *DefaultJobService) CreateJob(customerID uuid.UUID, req CreateJobRequest) (*models.Job, error) {
	j := models.Job{
		CustomerID:  customerID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Pin:         req.Pin,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
		Status:      models.JobStatusOpen,
		ImageURLs:   req.ImageURLs,
	}
	if err := s.Jobs.Create(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// UpdateStatus moves a job to an explicit state. Only the posting customer
// may do so.
func (s *DefaultJobService) UpdateStatus(actorID, jobID uuid.UUID, status models.JobStatus) (*models.Job, error) {
	if !models.ValidJobStatus(status) {
		return nil, ErrInvalidStatus
	}
	j, err := s.Jobs.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, ErrJobNotFound
	}
	if j.CustomerID != actorID {
		return nil, ErrNotOwner
	}
	return s.Jobs.UpdateStatus(jobID, status)
}

func (s *DefaultJobService) assemble(j models.Job) (*models.JobDetail, error) {
	customer, err := s.Users.GetByID(j.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	bids, err := s.bidDetails(j.ID)
	if err != nil {
		return nil, err
	}
	return &models.JobDetail{Job: j, Customer: customer, Bids: bids}, nil
}
