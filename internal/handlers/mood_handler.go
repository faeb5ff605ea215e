package handlers

import (
	"errors"
	"log"
	"strings"

	"moodring/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MoodHandler handles HTTP requests for mood analysis.
type MoodHandler struct {
	moodService *services.MoodService
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(moodService *services.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// RegisterRoutes registers the mood analysis route with the Fiber app.
func (h *MoodHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/analyze-mood", h.HandleAnalyzeMood)
}

// AnalyzeMoodRequest represents the request body for mood analysis.
type AnalyzeMoodRequest struct {
	Content string `json:"content"`
}

// HandleAnalyzeMood classifies the mood of the given text. Empty content
// and a missing API key are errors; a failing upstream call is not — the
// response then carries the neutral default.
func (h *MoodHandler) HandleAnalyzeMood(c *fiber.Ctx) error {
	var req AnalyzeMoodRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing analyze-mood request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	moods, err := h.moodService.Classify(c.Context(), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyText) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   err.Error(),
			})
		}
		log.Printf("Mood analysis unavailable: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Mood analysis is not available",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"mood": strings.Join(moods, ","),
	})
}
