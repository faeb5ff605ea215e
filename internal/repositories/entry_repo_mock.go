package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"moodring/internal/models"

	"github.com/google/uuid"
)

// MockEntryRepository is an in-memory implementation of EntryRepository.
type MockEntryRepository struct {
	entries map[string]models.Entry
	mu      sync.RWMutex
}

// NewMockEntryRepository creates a new instance of MockEntryRepository.
func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]models.Entry),
	}
}

// GetAll returns all entries, newest first.
func (r *MockEntryRepository) GetAll() ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entryList := make([]models.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entryList = append(entryList, entry)
	}
	sortEntriesNewestFirst(entryList)
	return entryList, nil
}

// GetByUserID returns all entries owned by the given user, newest first.
func (r *MockEntryRepository) GetByUserID(userID string) ([]models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entryList []models.Entry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			entryList = append(entryList, entry)
		}
	}
	sortEntriesNewestFirst(entryList)
	return entryList, nil
}

// GetByID returns an entry by its ID.
func (r *MockEntryRepository) GetByID(id string) (*models.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
	}
	return &entry, nil
}

// Create adds a new entry.
func (r *MockEntryRepository) Create(entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Mood == "" {
		entry.Mood = models.MoodNeutral
	}
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries[entry.ID] = *entry
	return nil
}

// UpdateFields applies column-style updates to a stored entry.
func (r *MockEntryRepository) UpdateFields(id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
	}
	for column, value := range fields {
		switch column {
		case "title":
			entry.Title = value.(string)
		case "content":
			entry.Content = value.(string)
		case "mood":
			entry.Mood = value.(string)
		}
	}
	entry.UpdatedAt = time.Now()
	r.entries[id] = entry
	return nil
}

// Delete removes an entry by its ID.
func (r *MockEntryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("entry with ID %s: %w", id, ErrNotFound)
	}
	delete(r.entries, id)
	return nil
}

// deleteByUserID removes every entry owned by the given user. Used by the
// mock user repository to mirror the database cascade.
func (r *MockEntryRepository) deleteByUserID(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.entries {
		if entry.UserID == userID {
			delete(r.entries, id)
		}
	}
}

func sortEntriesNewestFirst(entries []models.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
