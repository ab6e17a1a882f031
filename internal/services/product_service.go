package services

import (
	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	events rabbitmq.Publisher
}

// NewProductService creates a new ProductService. events may be nil, in which
// case mutation events are not published.
func NewProductService(repo repositories.ProductRepository, events rabbitmq.Publisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(req models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publish("product.created", product.ID)
	return product, nil
}

// UpdateProduct overwrites name, price and description of the product
// matching id.
func (s *ProductService) UpdateProduct(id string, req models.ProductRequest) error {
	return s.repo.Update(id, &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
}

// DeleteProduct removes the product matching id.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("product.deleted", id)
	return nil
}

func (s *ProductService) publish(event, id string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishEntityEvent(map[string]interface{}{
		"event": event,
		"id":    id,
	})
	if err != nil {
		logger.Warnf("Failed to publish %s event for product %s: %v", event, id, err)
	}
}
