package services_test

import (
	"testing"

	"moodring/internal/models"
	"moodring/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_UpdateUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{ID: "alice-id", Username: "alice"}
	newUsername := "alice2"

	// Self update with a free username
	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Once()
	mockRepo.On("GetByUsername", "alice2").Return(nil, notFoundErr("user with username alice2")).Once()
	mockRepo.On("UpdateFields", "alice-id", map[string]interface{}{"username": "alice2"}).Return(nil).Once()
	mockRepo.On("GetByID", "alice-id").Return(&models.User{ID: "alice-id", Username: "alice2"}, nil).Once()

	user, err := service.UpdateUser("alice-id", "alice-id", services.UpdateUserRequest{Username: &newUsername})
	assert.NoError(t, err)
	assert.Equal(t, "alice2", user.Username)
	mockRepo.AssertExpectations(t)

	// Someone else's account is off limits
	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Once()
	_, err = service.UpdateUser("bob-id", "alice-id", services.UpdateUserRequest{Username: &newUsername})
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockRepo.AssertNotCalled(t, "UpdateFields", "alice-id", mock.Anything)
	mockRepo.AssertExpectations(t)

	// Taken username is rejected
	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Once()
	mockRepo.On("GetByUsername", "alice2").Return(&models.User{ID: "other-id", Username: "alice2"}, nil).Once()
	_, err = service.UpdateUser("alice-id", "alice-id", services.UpdateUserRequest{Username: &newUsername})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser_PasswordIsRehashed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{ID: "alice-id", Username: "alice"}
	newPassword := "brandnewpw"

	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Twice()
	mockRepo.On("UpdateFields", "alice-id", mock.MatchedBy(func(fields map[string]interface{}) bool {
		hash, ok := fields["password_hash"].(string)
		if !ok || len(fields) != 1 {
			return false
		}
		// The plaintext never reaches the repository.
		probe := &models.User{PasswordHash: hash}
		return hash != newPassword && probe.Authenticate(newPassword)
	})).Return(nil).Once()

	_, err := service.UpdateUser("alice-id", "alice-id", services.UpdateUserRequest{Password: &newPassword})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	stored := &models.User{ID: "alice-id", Username: "alice"}

	// Self delete cascades through the repository
	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Once()
	mockRepo.On("Delete", "alice-id").Return(nil).Once()
	assert.NoError(t, service.DeleteUser("alice-id", "alice-id"))
	mockRepo.AssertExpectations(t)

	// Foreign account rejected
	mockRepo.On("GetByID", "alice-id").Return(stored, nil).Once()
	err := service.DeleteUser("bob-id", "alice-id")
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	profile := &models.User{
		ID:       "alice-id",
		Username: "alice",
		Entries: []models.Entry{
			{ID: "e1", Title: "T", UserID: "alice-id"},
		},
	}
	mockRepo.On("GetByIDWithEntries", "alice-id").Return(profile, nil).Once()

	user, err := service.GetUserProfile("alice-id")
	assert.NoError(t, err)
	assert.Len(t, user.Entries, 1)
	mockRepo.AssertExpectations(t)
}
