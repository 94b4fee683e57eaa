package user

import (
	"errors"
	"fmt"

	userRepo "labourmandi/database/repository/user"
	"labourmandi/models"

	"github.com/google/uuid"
)

// ErrNotFound signals an update against a user id with no record.
var ErrNotFound = errors.New("user not found")

// UserService defines business logic for user profile operations.
type UserService interface {
	GetUserByID(id uuid.UUID) (*models.User, error)
	UpdateProfile(id uuid.UUID, req models.UserUpdateRequest) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// UpdateProfile applies a partial update; fields absent from the request are
// left untouched.
func (s *DefaultUserService) UpdateProfile(id uuid.UUID, req models.UserUpdateRequest) (*models.User, error) {
	usr, err := s.Repo.Update(id, req.Columns())
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}
