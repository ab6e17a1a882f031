package services

import (
	"fmt"

	"shopadmin/internal/models"
	"shopadmin/internal/repositories"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo   repositories.UserRepository
	events rabbitmq.Publisher
}

// NewUserService creates a new UserService. events may be nil, in which case
// mutation events are not published.
func NewUserService(repo repositories.UserRepository, events rabbitmq.Publisher) *UserService {
	return &UserService{
		repo:   repo,
		events: events,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// CreateUser hashes the password and creates a new user account.
func (s *UserService) CreateUser(req models.UserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	s.publish("user.created", user.ID)
	return user, nil
}

// UpdateUser overwrites username, email and password of the user matching id.
func (s *UserService) UpdateUser(id string, req models.UserRequest) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Update(id, &models.User{
		Username: req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	})
}

// DeleteUser removes the user matching id.
func (s *UserService) DeleteUser(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("user.deleted", id)
	return nil
}

func (s *UserService) publish(event, id string) {
	if s.events == nil {
		return
	}
	err := s.events.PublishEntityEvent(map[string]interface{}{
		"event": event,
		"id":    id,
	})
	if err != nil {
		logger.Warnf("Failed to publish %s event for user %s: %v", event, id, err)
	}
}
