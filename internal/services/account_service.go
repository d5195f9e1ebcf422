package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/folio-dev/portfolio-api/internal/constants"
	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUsernameInvalid      = errors.New("username is required and must be at most 50 characters")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AccountService manages site owner accounts.
type AccountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a user with a bcrypt-hashed password.
func (s *AccountService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(username) > constants.MaxUsernameLength {
		return nil, ErrUsernameInvalid
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// EnsureUser registers the user unless the username already exists.
func (s *AccountService) EnsureUser(input RegisterInput) (*models.User, bool, error) {
	user, err := s.Register(input)
	if errors.Is(err, ErrUsernameTaken) {
		existing, findErr := s.userRepo.FindByUsername(strings.TrimSpace(input.Username))
		if findErr != nil {
			return nil, false, fmt.Errorf("failed to find user: %w", findErr)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *AccountService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AccountService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
