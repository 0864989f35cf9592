package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dmstancu/workshop-api/internal/constants"
	"github.com/dmstancu/workshop-api/internal/models"
	"github.com/dmstancu/workshop-api/internal/repository"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameRequired     = errors.New("username is required")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication and user provisioning.
type AuthService struct {
	userRepo     repository.UserRepository
	workshopRepo repository.WorkshopRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, workshopRepo repository.WorkshopRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		workshopRepo: workshopRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user. An unknown
// username and a wrong password both yield ErrInvalidCredentials so the
// response cannot be used to enumerate usernames.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ProvisionUserInput represents parameters to provision a new user into a
// workshop. Admin-only operation.
type ProvisionUserInput struct {
	Username   string
	Password   string
	Role       models.UserRole
	WorkshopID uint64
}

// ProvisionUser creates a user belonging to an existing workshop.
func (s *AuthService) ProvisionUser(input ProvisionUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.workshopRepo.FindByID(input.WorkshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("failed to find workshop: %w", err)
	}

	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		WorkshopID:   input.WorkshopID,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
