package repositories

import (
	"fmt"
	"moodring/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEntryRepository is a GORM implementation of EntryRepository.
type GORMEntryRepository struct {
	db *gorm.DB
}

// NewGORMEntryRepository creates a new instance of GORMEntryRepository.
func NewGORMEntryRepository(db *gorm.DB) *GORMEntryRepository {
	return &GORMEntryRepository{
		db: db,
	}
}

// GetAll retrieves all entries from the database, newest first.
func (r *GORMEntryRepository) GetAll() ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get all entries: %w", err)
	}
	return entries, nil
}

// GetByUserID retrieves all entries owned by the given user, newest first.
func (r *GORMEntryRepository) GetByUserID(userID string) ([]models.Entry, error) {
	var entries []models.Entry
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get entries for user %s: %w", userID, err)
	}
	return entries, nil
}

// GetByID retrieves a single entry by its ID from the database.
func (r *GORMEntryRepository) GetByID(id string) (*models.Entry, error) {
	var entry models.Entry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get entry by ID %s: %w", id, err)
	}
	return &entry, nil
}

// Create creates a new entry in the database.
func (r *GORMEntryRepository) Create(entry *models.Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Mood == "" {
		entry.Mood = models.MoodNeutral
	}
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}
	return nil
}

// UpdateFields applies the given allow-listed column updates to an entry.
// GORM rolls the statement back on failure, so a multi-field update either
// commits completely or not at all.
func (r *GORMEntryRepository) UpdateFields(id string, fields map[string]interface{}) error {
	res := r.db.Model(&models.Entry{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete deletes an entry by its ID from the database.
func (r *GORMEntryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Entry{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
