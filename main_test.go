package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodring/internal/models"
	"moodring/internal/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *repositories.GORMUserRepository, *repositories.GORMEntryRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:main_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Entry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	entryRepo := repositories.NewGORMEntryRepository(db)
	app := newApp(userRepo, entryRepo, nil, nil, "test_jwt_secret")
	return app, userRepo, entryRepo
}

func TestAppHealthCheck(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, "healthy", health["status"])
	assert.NotEmpty(t, health["time"])
}

func TestSeedDatabase(t *testing.T) {
	_, userRepo, entryRepo := newTestApp(t)

	seedDatabase(userRepo, entryRepo)

	alice, err := userRepo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.True(t, alice.Authenticate("password123"))

	demo, err := userRepo.GetByUsername("demo")
	assert.NoError(t, err)
	assert.True(t, demo.Authenticate("demo123"))

	aliceEntries, err := entryRepo.GetByUserID(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceEntries, 2)

	// Seeding twice must not duplicate users or entries.
	seedDatabase(userRepo, entryRepo)
	users, err := userRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, users, 4)
	aliceEntries, err = entryRepo.GetByUserID(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceEntries, 2)
}

// Without a DSN or SQLite path the app runs entirely on the in-memory
// repositories.
func TestAppWithoutDatabase(t *testing.T) {
	userRepo, entryRepo, err := newRepositories("", "")
	assert.NoError(t, err)
	assert.IsType(t, &repositories.MockUserRepository{}, userRepo)
	assert.IsType(t, &repositories.MockEntryRepository{}, entryRepo)

	seedDatabase(userRepo, entryRepo)
	alice, err := userRepo.GetByUsername("alice")
	assert.NoError(t, err)
	aliceEntries, err := entryRepo.GetByUserID(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceEntries, 2)

	app := newApp(userRepo, entryRepo, nil, nil, "test_jwt_secret")

	body, err := json.Marshal(map[string]string{"username": "alice", "password": "password123"})
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	resp.Body.Close()
	token, _ := loginResp["token"].(string)
	assert.NotEmpty(t, token)

	body, err = json.Marshal(map[string]string{"title": "In memory", "content": "No database behind this one."})
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/entries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Entry
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, alice.ID, created.UserID)

	aliceEntries, err = entryRepo.GetByUserID(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceEntries, 3)

	req = httptest.NewRequest(http.MethodDelete, "/users/"+alice.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Deleting the user takes their entries with them, like the database
	// cascade.
	aliceEntries, err = entryRepo.GetByUserID(alice.ID)
	assert.NoError(t, err)
	assert.Empty(t, aliceEntries)
	_, err = userRepo.GetByID(alice.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
