package repositories

import "moodring/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// GetByIDWithEntries loads a user together with their journal entries.
	GetByIDWithEntries(id string) (*models.User, error)
	// UpdateFields applies only the given column/value pairs. Callers are
	// responsible for allow-listing; the repository never lets request
	// payloads choose columns.
	UpdateFields(id string, fields map[string]interface{}) error
	// Delete removes the user and all of their entries atomically.
	Delete(id string) error
}
