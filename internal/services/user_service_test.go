package services_test

import (
	"fmt"
	"testing"

	"shopadmin/internal/models"
	"shopadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(id string, user *models.User) error {
	args := m.Called(id, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of rabbitmq.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEntityEvent(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	expectedUsers := []models.User{
		{ID: "1", Username: "alice", Email: "alice@example.com"},
		{ID: "2", Username: "bob", Email: "bob@example.com"},
	}

	mockRepo.On("GetAll").Return(expectedUsers, nil).Once()

	users, err := service.GetAllUsers()

	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, expectedUsers, users)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	var stored *models.User
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*models.User)
		stored.ID = "generated-id"
	}).Return(nil).Once()

	user, err := service.CreateUser(models.UserRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "generated-id", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)

	// The plaintext never reaches the repository.
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUserPublishesEvent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockPublisher)
	service := services.NewUserService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-1"
	}).Return(nil).Once()
	mockEvents.On("PublishEntityEvent", map[string]interface{}{
		"event": "user.created",
		"id":    "user-1",
	}).Return(nil).Once()

	_, err := service.CreateUser(models.UserRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestUserService_CreateUserRepositoryFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockPublisher)
	service := services.NewUserService(mockRepo, mockEvents)

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(fmt.Errorf("database error")).Once()

	user, err := service.CreateUser(models.UserRequest{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	// No event for a failed create.
	mockEvents.AssertNotCalled(t, "PublishEntityEvent", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo, nil)

	mockRepo.On("Update", "user-1", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		updated := args.Get(1).(*models.User)
		assert.Equal(t, "alice2", updated.Username)
		assert.Equal(t, "alice2@example.com", updated.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpassword")))
	}).Return(nil).Once()

	err := service.UpdateUser("user-1", models.UserRequest{
		Name:     "alice2",
		Email:    "alice2@example.com",
		Password: "newpassword",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockEvents := new(MockPublisher)
	service := services.NewUserService(mockRepo, mockEvents)

	mockRepo.On("Delete", "user-1").Return(nil).Once()
	mockEvents.On("PublishEntityEvent", map[string]interface{}{
		"event": "user.deleted",
		"id":    "user-1",
	}).Return(nil).Once()

	err := service.DeleteUser("user-1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockEvents.AssertExpectations(t)

	// Failure path: no event when the repository rejects the delete.
	mockRepo.On("Delete", "user-99").Return(fmt.Errorf("user with ID user-99 not found")).Once()
	err = service.DeleteUser("user-99")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
