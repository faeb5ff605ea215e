package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"moodring/internal/models"
)

// Completer produces a text completion for a prompt. Implemented by
// ai.Client; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// MoodService classifies journal text into mood labels by calling an
// external text-completion API.
type MoodService struct {
	client Completer
}

// NewMoodService creates a new MoodService. A nil client means the
// classifier is unconfigured; Classify will then return ErrNotConfigured.
func NewMoodService(client Completer) *MoodService {
	return &MoodService{
		client: client,
	}
}

// Classify returns the mood labels detected in text, always drawn from the
// canonical vocabulary and never empty.
//
// Empty text and missing configuration are the only error cases; any
// failure of the actual call (transport, non-200, garbled response) is
// swallowed and degrades to the single label "neutral". A classification
// problem must never surface as an error to the end user.
func (s *MoodService) Classify(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if s.client == nil {
		return nil, ErrNotConfigured
	}

	prompt := buildMoodPrompt(text)

	response, err := s.client.Complete(ctx, prompt)
	if err != nil {
		log.Printf("Mood classification failed, defaulting to neutral: %v", err)
		return []string{models.MoodNeutral}, nil
	}

	normalized := models.NormalizeMoods(models.ParseMoods(response))
	return models.ParseMoods(normalized), nil
}

// buildMoodPrompt embeds the journal text and the full vocabulary into an
// instruction that asks for comma-separated labels only.
func buildMoodPrompt(text string) string {
	return fmt.Sprintf(
		"Analyze the emotional tone of the following journal entry and respond "+
			"with ONLY a comma-separated list of the emotions you detect, chosen "+
			"from this list: %s. Do not include any other words.\n\nJournal entry:\n%s",
		strings.Join(models.MoodVocabulary, ", "), text)
}
