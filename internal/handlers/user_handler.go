package handlers

import (
	"errors"
	"log"

	"moodring/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts and profiles.
type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Patch("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)

	router.Get("/user-profile/:id", h.HandleGetUserProfile)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleCreateUser creates a new user account. Same semantics as signup.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
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

	user, err := h.authService.RegisterUser(req.Username, req.Password)
	if err != nil {
		log.Printf("Error creating user %s: %v", req.Username, err)
		if errors.Is(err, services.ErrUsernameTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Could not create user",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleGetUserByID retrieves a single user by their ID.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		log.Printf("Error getting user by ID %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve user",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleGetUserProfile retrieves a user together with their entries.
func (h *UserHandler) HandleGetUserProfile(c *fiber.Ctx) error {
	userID := c.Params("id")
	user, err := h.userService.GetUserProfile(userID)
	if err != nil {
		log.Printf("Error getting profile for user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve user profile",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}

// HandleUpdateUser updates the authenticated user's own account.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req services.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
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

	user, err := h.userService.UpdateUser(actingUserID, userID, req)
	if err != nil {
		log.Printf("Error updating user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not update user",
			"error":   err.Error(),
		})
	}

	return c.JSON(user)
}

// HandleDeleteUser deletes the authenticated user's own account along with
// all of their entries.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	actingUserID, _ := c.Locals("user_id").(string)

	if err := h.userService.DeleteUser(actingUserID, userID); err != nil {
		log.Printf("Error deleting user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
