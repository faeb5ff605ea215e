package repositories

import "moodring/internal/models"

// EntryRepository defines the interface for journal entry data access.
type EntryRepository interface {
	GetAll() ([]models.Entry, error)
	GetByUserID(userID string) ([]models.Entry, error)
	GetByID(id string) (*models.Entry, error)
	Create(entry *models.Entry) error
	// UpdateFields applies only the given column/value pairs. Callers are
	// responsible for allow-listing; the repository never lets request
	// payloads choose columns.
	UpdateFields(id string, fields map[string]interface{}) error
	Delete(id string) error
}
