package handlers

import (
	"shopadmin/internal/models"
	"shopadmin/internal/services"
	"shopadmin/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes with the Fiber app.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/reviews", h.HandleGetReviews)
	router.Post("/createReview", h.HandleCreateReview)
	router.Put("/updateReview/:id", h.HandleUpdateReview)
	router.Delete("/deleteReview/:id", h.HandleDeleteReview)
}

// HandleGetReviews retrieves all reviews joined with usernames and product
// names.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews()
	if err != nil {
		logger.Errorf("Error getting all reviews: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview creates a new review. The referenced user and product
// must already exist.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req models.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Errorf("Error parsing create review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	review, err := h.service.CreateReview(req)
	if err != nil {
		logger.Errorf("Error creating review: %v", err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":         review.ID,
		"user_id":    review.UserID,
		"product_id": review.ProductID,
		"comment":    review.Comment,
		"rating":     review.Rating,
	})
}

// HandleUpdateReview overwrites comment and rating of the review matching the
// path id.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	var req models.ReviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Errorf("Error parsing update review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpdateReview(reviewID, req); err != nil {
		logger.Errorf("Error updating review %s: %v", reviewID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update review",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Review updated successfully",
	})
}

// HandleDeleteReview removes the review matching the path id.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	if err := h.service.DeleteReview(reviewID); err != nil {
		logger.Errorf("Error deleting review %s: %v", reviewID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete review",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
	})
}
