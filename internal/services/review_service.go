package services

import (
	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/rabbitmq"
)

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	repo   repositories.ReviewRepository
	events rabbitmq.Publisher
}

// NewReviewService creates a new ReviewService. events may be nil, in which
// case mutation events are not published.
func NewReviewService(repo repositories.ReviewRepository, events rabbitmq.Publisher) *ReviewService {
	return &ReviewService{
		repo:   repo,
		events: events,
	}
}

// ListReviews retrieves all reviews joined with usernames and product names.
func (s *ReviewService) ListReviews() ([]models.ReviewListing, error) {
	return s.repo.ListJoined()
}

// CreateReview creates a new review for an existing user/product pair.
func (s *ReviewService) CreateReview(req models.ReviewRequest) (*models.Review, error) {
	review := &models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}

	if err := s.repo.Create(review); err != nil {
		return nil, err
	}

	s.publish("review.created", review.ID)
	return review, nil
}

// UpdateReview overwrites comment and rating of the review matching id. The
// author and product cannot be changed after creation.
func (s *ReviewService) UpdateReview(id string, req models.ReviewUpdateRequest) error {
	return s.repo.Update(id, req.Comment, req.Rating)
}

// DeleteReview removes the review matching id.
func (s *ReviewService) DeleteReview(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("review.deleted", id)
	return nil
}

func (s *ReviewService) publish(event, id string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishEntityEvent(map[string]interface{}{
		"event": event,
		"id":    id,
	})
	if err != nil {
		logger.Warnf("Failed to publish %s event for review %s: %v", event, id, err)
	}
}
