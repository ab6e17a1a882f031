package repositories

import (
	"fmt"

	"shopadmin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// ListJoined retrieves all reviews joined with the author's username and the
// reviewed product's name.
func (r *GORMReviewRepository) ListJoined() ([]models.ReviewListing, error) {
	listings := make([]models.ReviewListing, 0)
	err := r.db.Model(&models.Review{}).
		Select("reviews.id AS review_id, users.username AS username, products.product_name AS product, reviews.comment, reviews.rating, reviews.created_at").
		Joins("JOIN users ON users.id = reviews.user_id").
		Joins("JOIN products ON products.id = reviews.product_id").
		Scan(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list reviews: %v", classify(err), err)
	}
	return listings, nil
}

// Create creates a new review, assigning an ID if none is set. The referenced
// user and product must exist; the foreign keys reject anything else.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("%w: failed to create review: %v", classify(err), err)
	}
	return nil
}

// Update overwrites comment and rating of the review matching id. The author
// and product references are immutable after creation.
func (r *GORMReviewRepository) Update(id string, comment string, rating int) error {
	res := r.db.Model(&models.Review{}).Where("id = ?", id).Updates(map[string]any{
		"comment": comment,
		"rating":  rating,
	})
	if res.Error != nil {
		return fmt.Errorf("%w: failed to update review %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the review matching id from the database.
func (r *GORMReviewRepository) Delete(id string) error {
	res := r.db.Delete(&models.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to delete review %s: %v", classify(res.Error), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
