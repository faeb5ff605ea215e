package models

import "time"

// Entry represents a single journal entry.
//
// Mood holds the detected emotions as a comma-separated string drawn from
// MoodVocabulary, e.g. "grateful,happy" or just "neutral".
type Entry struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Content   string    `json:"content" gorm:"type:text;not null" validate:"required"`
	Mood      string    `json:"mood" gorm:"type:varchar(255);default:'neutral'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index;not null"`
}

// Moods returns the individual mood labels stored on the entry.
func (e *Entry) Moods() []string {
	return ParseMoods(e.Mood)
}

// SetMoods stores the given labels, normalized against the vocabulary.
func (e *Entry) SetMoods(labels []string) {
	e.Mood = NormalizeMoods(labels)
}
