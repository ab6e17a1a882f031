package services_test

import (
	"fmt"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewRepository is a mock implementation of repositories.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) ListJoined() ([]models.ReviewListing, error) {
	args := m.Called()
	return args.Get(0).([]models.ReviewListing), args.Error(1)
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(id string, comment string, rating int) error {
	args := m.Called(id, comment, rating)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestReviewService_ListReviews(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	expected := []models.ReviewListing{
		{ReviewID: "rev-1", Username: "alice", Product: "Laptop", Comment: "great", Rating: 5},
	}

	mockRepo.On("ListJoined").Return(expected, nil).Once()

	listings, err := service.ListReviews()

	assert.NoError(t, err)
	assert.Equal(t, expected, listings)
	mockRepo.AssertExpectations(t)
}

func TestReviewService_CreateReview(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockEvents := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.AnythingOfType("*models.Review")).Run(func(args mock.Arguments) {
		created := args.Get(0).(*models.Review)
		assert.Equal(t, "user-1", created.UserID)
		assert.Equal(t, "prod-1", created.ProductID)
		assert.Equal(t, "great", created.Comment)
		assert.Equal(t, 5, created.Rating)
		created.ID = "rev-1"
	}).Return(nil).Once()
	mockEvents.On("PublishEntityEvent", map[string]interface{}{
		"event": "review.created",
		"id":    "rev-1",
	}).Return(nil).Once()

	review, err := service.CreateReview(models.ReviewRequest{
		UserID:    "user-1",
		ProductID: "prod-1",
		Comment:   "great",
		Rating:    5,
	})

	assert.NoError(t, err)
	assert.Equal(t, "rev-1", review.ID)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestReviewService_CreateReviewBrokenReference(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockEvents := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.AnythingOfType("*models.Review")).
		Return(fmt.Errorf("constraint violation")).Once()

	review, err := service.CreateReview(models.ReviewRequest{
		UserID:    "missing",
		ProductID: "missing",
		Rating:    3,
	})

	assert.Error(t, err)
	assert.Nil(t, review)
	mockEvents.AssertNotCalled(t, "PublishEntityEvent", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestReviewService_UpdateReview(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	service := services.NewReviewService(mockRepo, nil)

	mockRepo.On("Update", "rev-1", "even better", 5).Return(nil).Once()

	err := service.UpdateReview("rev-1", models.ReviewUpdateRequest{
		Comment: "even better",
		Rating:  5,
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	mockRepo.On("Update", "rev-99", "ghost", 1).
		Return(fmt.Errorf("review with ID rev-99 not found")).Once()
	err = service.UpdateReview("rev-99", models.ReviewUpdateRequest{Comment: "ghost", Rating: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestReviewService_DeleteReview(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	mockEvents := new(MockPublisher)
	service := services.NewReviewService(mockRepo, mockEvents)

	mockRepo.On("Delete", "rev-1").Return(nil).Once()
	mockEvents.On("PublishEntityEvent", map[string]interface{}{
		"event": "review.deleted",
		"id":    "rev-1",
	}).Return(nil).Once()

	err := service.DeleteReview("rev-1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}
