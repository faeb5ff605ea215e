package services

import (
	"fmt"

	"moodring/internal/models"
	"moodring/internal/repositories"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateUserRequest carries the mutable user fields for a PATCH. Nil fields
// are left untouched.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserProfile retrieves a user together with all their journal entries.
func (s *UserService) GetUserProfile(id string) (*models.User, error) {
	return s.userRepo.GetByIDWithEntries(id)
}

// UpdateUser applies an allow-listed update to the user's own account.
// Only username and password may change; a password change is re-hashed
// through the password store, never stored raw.
func (s *UserService) UpdateUser(actingUserID, id string, req UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.ID != actingUserID {
		return nil, fmt.Errorf("user %s cannot modify user %s: %w", actingUserID, id, ErrForbidden)
	}

	fields := make(map[string]interface{})
	if req.Username != nil {
		if existing, err := s.userRepo.GetByUsername(*req.Username); err == nil && existing != nil && existing.ID != id {
			return nil, fmt.Errorf("username %q: %w", *req.Username, ErrUsernameTaken)
		}
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		scratch := &models.User{}
		if err := scratch.SetPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password_hash"] = scratch.PasswordHash
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(id)
}

// DeleteUser deletes the user's own account and cascades to their entries.
func (s *UserService) DeleteUser(actingUserID, id string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user.ID != actingUserID {
		return fmt.Errorf("user %s cannot delete user %s: %w", actingUserID, id, ErrForbidden)
	}
	return s.userRepo.Delete(id)
}
