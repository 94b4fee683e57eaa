package user

import (
	"errors"
	"fmt"

	"labourmandi/database"
	"labourmandi/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepo implements UserRepository on the shared Postgres handle.
type GormUserRepo struct {
	DB *gorm.DB
}

func NewGormUserRepo() *GormUserRepo {
	return &GormUserRepo{DB: database.DB}
}

func (r *GormUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	var usr models.User
	err := r.DB.First(&usr, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user %s: %w", id, err)
	}
	return &usr, nil
}

func (r *GormUserRepo) GetByPhone(phone string) (*models.User, error) {
	var usr models.User
	err := r.DB.First(&usr, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user by phone: %w", err)
	}
	return &usr, nil
}

func (r *GormUserRepo) Create(usr *models.User) error {
	if err := r.DB.Create(usr).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormUserRepo) Update(id uuid.UUID, cols map[string]any) (*models.User, error) {
	if len(cols) > 0 {
		res := r.DB.Model(&models.User{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, fmt.Errorf("failed to update user %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.GetByID(id)
}

func (r *GormUserRepo) List() ([]models.User, error) {
	var users []models.User
	if err := r.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *GormUserRepo) Count() (int64, error) {
	var n int64
	if err := r.DB.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
