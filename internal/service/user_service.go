package service

import (
	"fmt"

	"github.com/facuvd/horarios-backend-go/internal/auth"
	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/internal/repository"
)

// ErrBadCredentials is returned on failed login. It deliberately does
// not distinguish unknown users from wrong passwords.
var ErrBadCredentials = fmt.Errorf("invalid username or password")

// UserService handles registration and authentication
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. New accounts get the admin role, as
// registration is meant for timetable maintainers.
func (s *UserService) Register(req models.RegisterRequest) (*models.User, error) {
	if err := auth.CheckPasswordStrength(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q already exists", ErrConflict, req.Username)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.Create(req.Username, hash, models.RoleAdmin)
}

// Authenticate verifies credentials and returns the account
func (s *UserService) Authenticate(req models.LoginRequest) (*models.User, error) {
	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}
	return user, nil
}

// GetByUsername retrieves an account by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	return user, nil
}
