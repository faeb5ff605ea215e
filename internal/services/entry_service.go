package services

import (
	"encoding/json"
	"fmt"
	"log"

	"moodring/internal/models"
	"moodring/internal/repositories"
	"moodring/pkg/rabbitmq"
)

// EntryService handles business logic related to journal entries.
type EntryService struct {
	entryRepo repositories.EntryRepository
	mqClient  *rabbitmq.Client
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo repositories.EntryRepository, mqClient *rabbitmq.Client) *EntryService {
	return &EntryService{
		entryRepo: entryRepo,
		mqClient:  mqClient,
	}
}

// CreateEntryRequest carries the fields accepted when creating an entry.
// The owner is never taken from the payload; it comes from the verified
// token identity of the caller.
type CreateEntryRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"required"`
	Mood    string `json:"mood"`
}

// UpdateEntryRequest carries the mutable entry fields for a PATCH. Nil
// fields are left untouched. ID, owner and created timestamp can never be
// changed through an update.
type UpdateEntryRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
	Mood    *string `json:"mood"`
}

// GetEntries retrieves all entries, or only those owned by userID when it
// is non-empty.
func (s *EntryService) GetEntries(userID string) ([]models.Entry, error) {
	if userID != "" {
		return s.entryRepo.GetByUserID(userID)
	}
	return s.entryRepo.GetAll()
}

// GetEntryByID retrieves a single entry by its ID.
func (s *EntryService) GetEntryByID(id string) (*models.Entry, error) {
	return s.entryRepo.GetByID(id)
}

// CreateEntry creates a new entry owned by the acting user. Mood labels
// outside the vocabulary are dropped; an empty mood defaults to neutral.
func (s *EntryService) CreateEntry(actingUserID string, req CreateEntryRequest) (*models.Entry, error) {
	entry := &models.Entry{
		Title:   req.Title,
		Content: req.Content,
		UserID:  actingUserID,
	}
	entry.SetMoods(models.ParseMoods(req.Mood))

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	s.publishEvent("entry.created", entry)
	return entry, nil
}

// UpdateEntry applies an allow-listed update to an entry. Only the owner
// may update; title, content and mood are the only mutable fields.
func (s *EntryService) UpdateEntry(actingUserID, id string, req UpdateEntryRequest) (*models.Entry, error) {
	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != actingUserID {
		return nil, fmt.Errorf("user %s does not own entry %s: %w", actingUserID, id, ErrForbidden)
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Mood != nil {
		fields["mood"] = models.NormalizeMoods(models.ParseMoods(*req.Mood))
	}

	if len(fields) > 0 {
		if err := s.entryRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Mood != nil {
		s.publishEvent("entry.mood_analyzed", updated)
	}
	return updated, nil
}

// DeleteEntry removes an entry after verifying the acting user owns it.
func (s *EntryService) DeleteEntry(actingUserID, id string) error {
	entry, err := s.entryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if entry.UserID != actingUserID {
		return fmt.Errorf("user %s does not own entry %s: %w", actingUserID, id, ErrForbidden)
	}
	return s.entryRepo.Delete(id)
}

// publishEvent sends an entry event to RabbitMQ. Publishing is best effort:
// a failure is logged and never fails the request.
func (s *EntryService) publishEvent(event string, entry *models.Entry) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"event":    event,
		"entry_id": entry.ID,
		"user_id":  entry.UserID,
		"moods":    entry.Moods(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event for entry %s: %v", event, entry.ID, err)
		return
	}
	if err := s.mqClient.Publish("", rabbitmq.EntryEventsQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event for entry %s: %v", event, entry.ID, err)
	}
}
