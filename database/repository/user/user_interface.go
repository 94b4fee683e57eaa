package user

import (
	"labourmandi/models"

	"github.com/google/uuid"
)

// UserRepository is the single point of access for user records. Reads return
// (nil, nil) when no record matches; callers decide how to react.
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	// GetByPhone looks a user up by the unique phone column. Google-provisioned
	// accounts store their email in this column, so the same lookup serves
	// both identity paths.
	GetByPhone(phone string) (*models.User, error)
	Create(usr *models.User) error
	// Update applies a partial column update and returns the resulting record.
	Update(id uuid.UUID, cols map[string]any) (*models.User, error)
	List() ([]models.User, error)
	Count() (int64, error)
}
