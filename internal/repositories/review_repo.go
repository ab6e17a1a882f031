package repositories

import (
	"shopadmin/internal/models"
)

// ReviewRepository defines the interface for review data access. Listing is
// always joined against users and products; the raw rows are never exposed.
type ReviewRepository interface {
	ListJoined() ([]models.ReviewListing, error)
	Create(review *models.Review) error
	Update(id string, comment string, rating int) error
	Delete(id string) error
}
