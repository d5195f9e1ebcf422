package repository

import (
	"sync"

	"github.com/folio-dev/portfolio-api/internal/models"
)

// MemoryUserRepository is an in-memory implementation of UserRepository
type MemoryUserRepository struct {
	// guards the username uniqueness check across find+insert
	mu    sync.Mutex
	users *collection[models.User]
}

// NewMemoryUserRepository creates a new, empty UserRepository
func NewMemoryUserRepository() UserRepository {
	return &MemoryUserRepository{users: newCollection[models.User]()}
}

// Create creates a new user
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.findByUsername(user.Username); err == nil {
		return ErrUsernameTaken
	}

	*user = r.users.insert(func(id uint64) models.User {
		u := *user
		u.ID = id
		return u
	})
	return nil
}

// FindByID finds a user by ID
func (r *MemoryUserRepository) FindByID(id uint64) (*models.User, error) {
	u, ok := r.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// FindByUsername finds a user by username
func (r *MemoryUserRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByUsername(username)
}

func (r *MemoryUserRepository) findByUsername(username string) (*models.User, error) {
	for _, u := range r.users.all() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
