package repositories

import (
	"fmt"

	"shopadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products in storage order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to get all products: %v", classify(err), err)
	}
	return products, nil
}

// Create creates a new product in the database, assigning an ID if none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("%w: failed to create product: %v", classify(err), err)
	}
	return nil
}

// Update overwrites the mutable attributes of the product matching id.
// All three columns are bound, product_name included.
func (r *GORMProductRepository) Update(id string, product *models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]any{
		"product_name": product.Name,
		"price":        product.Price,
		"description":  product.Description,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: failed to update product %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the product matching id. A product still referenced by a
// review is rejected by the foreign key.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to delete product %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
