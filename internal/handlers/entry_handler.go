package handlers

import (
	"log"

	"moodring/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// EntryHandler handles HTTP requests for journal entries.
type EntryHandler struct {
	service  *services.EntryService
	validate *validator.Validate
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(service *services.EntryService) *EntryHandler {
	return &EntryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the entry routes with the Fiber app.
func (h *EntryHandler) RegisterRoutes(router fiber.Router) {
	entryRoutes := router.Group("/entries")
	entryRoutes.Get("/", h.HandleGetEntries)
	entryRoutes.Get("/:id", h.HandleGetEntryByID)
	entryRoutes.Post("/", h.HandleCreateEntry)
	entryRoutes.Patch("/:id", h.HandleUpdateEntry)
	entryRoutes.Delete("/:id", h.HandleDeleteEntry)
}

// HandleGetEntries retrieves all entries, optionally filtered to one owner
// via the user_id query parameter.
func (h *EntryHandler) HandleGetEntries(c *fiber.Ctx) error {
	entries, err := h.service.GetEntries(c.Query("user_id"))
	if err != nil {
		log.Printf("Error getting entries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve entries",
			"error":   err.Error(),
		})
	}
	return c.JSON(entries)
}

// HandleGetEntryByID retrieves a single entry by its ID.
func (h *EntryHandler) HandleGetEntryByID(c *fiber.Ctx) error {
	entryID := c.Params("id")
	entry, err := h.service.GetEntryByID(entryID)
	if err != nil {
		log.Printf("Error getting entry by ID %s: %v", entryID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve entry",
			"error":   err.Error(),
		})
	}
	return c.JSON(entry)
}

// HandleCreateEntry creates a new entry owned by the authenticated user.
func (h *EntryHandler) HandleCreateEntry(c *fiber.Ctx) error {
	var req services.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create entry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	// Ownership comes from the verified token, never from the payload.
	actingUserID, _ := c.Locals("user_id").(string)

	entry, err := h.service.CreateEntry(actingUserID, req)
	if err != nil {
		log.Printf("Error creating entry for user %s: %v", actingUserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// HandleUpdateEntry updates title, content and/or mood of an entry the
// authenticated user owns.
func (h *EntryHandler) HandleUpdateEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	var req services.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update entry request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	actingUserID, _ := c.Locals("user_id").(string)

	entry, err := h.service.UpdateEntry(actingUserID, entryID, req)
	if err != nil {
		log.Printf("Error updating entry %s: %v", entryID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update entry",
			"error":   err.Error(),
		})
	}

	return c.JSON(entry)
}

// HandleDeleteEntry deletes an entry the authenticated user owns.
func (h *EntryHandler) HandleDeleteEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")
	actingUserID, _ := c.Locals("user_id").(string)

	if err := h.service.DeleteEntry(actingUserID, entryID); err != nil {
		log.Printf("Error deleting entry %s: %v", entryID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete entry",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
