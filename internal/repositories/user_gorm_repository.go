package repositories

import (
	"fmt"

	"shopadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves all users in storage order.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to get all users: %v", classify(err), err)
	}
	return users, nil
}

// Create creates a new user in the database, assigning an ID if none is set.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("%w: failed to create user: %v", classify(err), err)
	}
	return nil
}

// Update overwrites the mutable attributes of the user matching id.
func (r *GORMUserRepository) Update(id string, user *models.User) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: failed to update user %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the user matching id from the database.
func (r *GORMUserRepository) Delete(id string) error {
	res := r.db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to delete user %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
