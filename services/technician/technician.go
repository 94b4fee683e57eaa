package technician

import (
	"errors"
	"fmt"
	"strings"

	technicianRepo "labourmandi/database/repository/technician"
	userRepo "labourmandi/database/repository/user"
	"labourmandi/models"

	"github.com/google/uuid"
)

// ErrNotFound signals a lookup for an id that is not a technician.
var ErrNotFound = errors.New("technician not found")

// Filter narrows the technician listing. Zero values mean "no constraint";
// Category "all" is treated the same as empty.
type Filter struct {
	Category   string
	Pin        string
	Search     string
	OnlineOnly bool
}

// TechnicianService assembles technician users with profile and portfolio.
type TechnicianService interface {
	List(filter Filter) ([]models.TechnicianDetail, error)
	GetByID(id uuid.UUID) (*models.TechnicianDetail, error)
}

// DefaultTechnicianService is the production implementation.
type DefaultTechnicianService struct {
	Users userRepo.UserRepository
	Repo  technicianRepo.TechnicianRepository
}

// List returns every technician that has a profile, joined with portfolio,
// then filtered. Users without a profile are dropped; they cannot be hired.
func (s *DefaultTechnicianService) List(filter Filter) ([]models.TechnicianDetail, error) {
	users, err := s.Users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var out []models.TechnicianDetail
	for i := range users {
		usr := users[i]
		if usr.UserType != models.UserTypeTechnician {
			continue
		}
		detail, err := s.assemble(usr)
		if err != nil {
			return nil, err
		}
		if detail.Profile == nil {
			continue
		}
		if matches(detail, filter) {
			out = append(out, *detail)
		}
	}
	if out == nil {
		out = []models.TechnicianDetail{}
	}
	return out, nil
}

func (s *DefaultTechnicianService) GetByID(id uuid.UUID) (*models.TechnicianDetail, error) {
	usr, err := s.Users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if usr == nil || usr.UserType != models.UserTypeTechnician {
		return nil, ErrNotFound
	}
	return s.assemble(*usr)
}

func (s *DefaultTechnicianService) assemble(usr models.User) (*models.TechnicianDetail, error) {
	profile, err := s.Repo.GetProfileByUserID(usr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	portfolio, err := s.Repo.GetPortfolioItems(usr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	if portfolio == nil {
		portfolio = []models.PortfolioItem{}
	}
	return &models.TechnicianDetail{User: usr, Profile: profile, Portfolio: portfolio}, nil
}

func matches(t *models.TechnicianDetail, f Filter) bool {
	if f.Category != "" && f.Category != "all" {
		if !strings.Contains(strings.ToLower(t.Profile.Category), strings.ToLower(f.Category)) {
			return false
		}
	}
	if f.Pin != "" && t.Pin != f.Pin {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.City), q) &&
			!strings.Contains(strings.ToLower(t.Profile.Category), q) {
			return false
		}
	}
	if f.OnlineOnly && !t.IsOnline {
		return false
	}
	return true
}
