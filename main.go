package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"moodring/internal/ai"
	"moodring/internal/handlers"
	"moodring/internal/middleware"
	"moodring/internal/models"
	"moodring/internal/repositories"
	"moodring/internal/services"
	"moodring/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "") // empty means local SQLite
	viper.SetDefault("SQLITE_PATH", "moodring.db") // empty (with no DSN) means in-memory
	viper.SetDefault("JWT_SECRET", "dev-secret-key")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_API_URL", "")
	viper.SetDefault("OPENAI_MODEL", "")
	viper.SetDefault("RABBITMQ_URL", "") // empty means events disabled
	viper.SetDefault("SEED", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Repositories ---
	userRepo, entryRepo, err := newRepositories(viper.GetString("DATABASE_DSN"), viper.GetString("SQLITE_PATH"))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL is not set; entry events are disabled")
	}

	// --- Mood classifier (optional credentials) ---
	// Without an API key the classifier stays nil and /analyze-mood reports
	// a configuration error instead of silently defaulting.
	var moodClient services.Completer
	if apiKey := viper.GetString("OPENAI_API_KEY"); apiKey != "" {
		moodClient = ai.NewClient(apiKey, viper.GetString("OPENAI_API_URL"), viper.GetString("OPENAI_MODEL"))
	} else {
		log.Println("OPENAI_API_KEY is not set; mood analysis will return a configuration error")
	}

	if viper.GetBool("SEED") {
		seedDatabase(userRepo, entryRepo)
	}

	// --- App ---
	app := newApp(userRepo, entryRepo, mqClient, moodClient, viper.GetString("JWT_SECRET"))

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for entry events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received entry event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeEntryEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newRepositories picks the backing store: PostgreSQL when a DSN is
// configured, a local SQLite file when a path is, and in-memory
// repositories when neither is set.
func newRepositories(dsn, sqlitePath string) (repositories.UserRepository, repositories.EntryRepository, error) {
	if dsn == "" && sqlitePath == "" {
		log.Println("No database configured; using in-memory repositories")
		entryRepo := repositories.NewMockEntryRepository()
		return repositories.NewMockUserRepository(entryRepo), entryRepo, nil
	}

	db, err := openDatabase(dsn, sqlitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Entry{}); err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMUserRepository(db), repositories.NewGORMEntryRepository(db), nil
}

// openDatabase opens PostgreSQL when a DSN is configured and falls back to
// a local SQLite file otherwise.
func openDatabase(dsn, sqlitePath string) (*gorm.DB, error) {
	if dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
}

// newApp wires repositories, services and handlers into a Fiber app.
// Signup, login and the health check are public; everything else requires a
// valid token.
func newApp(
	userRepo repositories.UserRepository,
	entryRepo repositories.EntryRepository,
	mqClient *rabbitmq.Client,
	moodClient services.Completer,
	jwtSecret string,
) *fiber.App {
	// --- Services ---
	authService := services.NewAuthService(userRepo, jwtSecret)
	userService := services.NewUserService(userRepo)
	entryService := services.NewEntryService(entryRepo, mqClient)
	moodService := services.NewMoodService(moodClient)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, authService)
	entryHandler := handlers.NewEntryHandler(entryService)
	moodHandler := handlers.NewMoodHandler(moodService)

	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- Public routes ---
	authHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Protected routes ---
	protected := app.Group("", middleware.AuthRequired(authService))
	userHandler.RegisterRoutes(protected)
	entryHandler.RegisterRoutes(protected)
	moodHandler.RegisterRoutes(protected)

	return app
}

// seedDatabase populates the database with demo users and entries.
func seedDatabase(userRepo repositories.UserRepository, entryRepo repositories.EntryRepository) {
	log.Println("Seeding database...")

	users := map[string]string{
		"alice":   "password123",
		"bob":     "password123",
		"charlie": "password123",
		"demo":    "demo123",
	}

	ids := make(map[string]string)
	for username, password := range users {
		if _, err := userRepo.GetByUsername(username); err == nil {
			// Already seeded on a previous run.
			continue
		}
		user := &models.User{Username: username}
		if err := user.SetPassword(password); err != nil {
			log.Printf("Error hashing seed password for %s: %v", username, err)
			continue
		}
		if err := userRepo.Create(user); err != nil {
			log.Printf("Error seeding user %s: %v", username, err)
			continue
		}
		ids[username] = user.ID
		log.Printf("Seeded user: %s (ID: %s)", username, user.ID)
	}

	entries := []models.Entry{
		{
			Title:   "My First Journal Entry",
			Content: "Today I'm feeling grateful for the beautiful weather and the opportunity to reflect on my day.",
			Mood:    "grateful,happy",
			UserID:  ids["alice"],
		},
		{
			Title:   "A Peaceful Moment",
			Content: "Spent some time in nature today. The sound of birds and rustling leaves was so calming.",
			Mood:    "calm,neutral",
			UserID:  ids["alice"],
		},
		{
			Title:   "New Beginnings",
			Content: "Starting this journal journey to track my emotional well-being and personal growth.",
			Mood:    "excited,hopeful",
			UserID:  ids["bob"],
		},
	}

	for i := range entries {
		if entries[i].UserID == "" {
			continue
		}
		if err := entryRepo.Create(&entries[i]); err != nil {
			log.Printf("Error seeding entry %q: %v", entries[i].Title, err)
		}
	}
}
