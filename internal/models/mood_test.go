package models_test

import (
	"testing"

	"moodring/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidMood(t *testing.T) {
	for _, label := range models.MoodVocabulary {
		assert.True(t, models.ValidMood(label), "vocabulary label %q should be valid", label)
	}

	assert.True(t, models.ValidMood("  Happy "))
	assert.True(t, models.ValidMood("GRATEFUL"))
	assert.False(t, models.ValidMood("ecstatic"))
	assert.False(t, models.ValidMood(""))
}

func TestParseMoods(t *testing.T) {
	assert.Equal(t, []string{"grateful", "happy"}, models.ParseMoods("grateful,happy"))
	assert.Equal(t, []string{"calm"}, models.ParseMoods("  calm , "))
	assert.Nil(t, models.ParseMoods(""))
	assert.Nil(t, models.ParseMoods(" , ,"))
}

func TestNormalizeMoods(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"valid labels kept in order", []string{"happy", "excited"}, "happy,excited"},
		{"case and whitespace normalized", []string{" Happy ", "SAD"}, "happy,sad"},
		{"invalid labels dropped", []string{"happy", "ecstatic", "calm"}, "happy,calm"},
		{"duplicates collapsed", []string{"calm", "calm", "calm"}, "calm"},
		{"nothing valid defaults to neutral", []string{"bogus", ""}, "neutral"},
		{"empty input defaults to neutral", nil, "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.NormalizeMoods(tt.labels))
		})
	}
}

func TestEntryMoodHelpers(t *testing.T) {
	entry := &models.Entry{}
	entry.SetMoods([]string{"grateful", "Happy", "nonsense"})
	assert.Equal(t, "grateful,happy", entry.Mood)
	assert.Equal(t, []string{"grateful", "happy"}, entry.Moods())

	entry.SetMoods(nil)
	assert.Equal(t, models.MoodNeutral, entry.Mood)
}

func TestUserPasswordStore(t *testing.T) {
	user := &models.User{Username: "alice"}

	// Fails closed with no stored hash.
	assert.False(t, user.Authenticate("pw123"))

	assert.NoError(t, user.SetPassword("pw123"))
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "pw123")

	assert.True(t, user.Authenticate("pw123"))
	assert.False(t, user.Authenticate("pw124"))

	// Setting a new password overwrites the old hash unconditionally.
	oldHash := user.PasswordHash
	assert.NoError(t, user.SetPassword("newpassword"))
	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.True(t, user.Authenticate("newpassword"))
	assert.False(t, user.Authenticate("pw123"))
}
