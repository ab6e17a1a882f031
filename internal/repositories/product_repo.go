package repositories

import (
	"shopadmin/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	Create(product *models.Product) error
	Update(id string, product *models.Product) error
	Delete(id string) error
}
