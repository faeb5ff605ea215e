package repositories

import (
	"fmt"
	"sync"
	"time"

	"moodring/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
// It is used for tests and for running the app without a real database.
type MockUserRepository struct {
	users   map[string]models.User
	entries *MockEntryRepository // for cascade delete; may be nil
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
// Passing an entry repository enables cascade deletion of a user's entries.
func NewMockUserRepository(entries *MockEntryRepository) *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[string]models.User),
		entries: entries,
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return fmt.Errorf("username %s already exists", user.Username)
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

// GetAll returns all users.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		userList = append(userList, user)
	}
	return userList, nil
}

// GetByUsername returns a user by username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByIDWithEntries returns a user with their entries attached.
func (r *MockUserRepository) GetByIDWithEntries(id string) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r.entries != nil {
		entries, err := r.entries.GetByUserID(id)
		if err != nil {
			return nil, err
		}
		user.Entries = entries
	}
	return user, nil
}

// UpdateFields applies column-style updates to a stored user.
func (r *MockUserRepository) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	for column, value := range fields {
		switch column {
		case "username":
			user.Username = value.(string)
		case "password_hash":
			user.PasswordHash = value.(string)
		}
	}
	user.UpdatedAt = time.Now()
	r.users[id] = user
	return nil
}

// Delete removes a user and, when wired, all of their entries.
func (r *MockUserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	if r.entries != nil {
		r.entries.deleteByUserID(id)
	}
	delete(r.users, id)
	return nil
}
