package handlers

import (
	"errors"

	"moodring/internal/repositories"
	"moodring/internal/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service and repository errors to HTTP status codes:
// missing records to 404, ownership violations to 403, everything else to
// a generic 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
