package repositories

import "shopadmin/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	Create(user *models.User) error
	Update(id string, user *models.User) error
	Delete(id string) error
}
