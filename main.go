package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/swiftride/admin-api/database"
	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/routes"
	"github.com/swiftride/admin-api/internal/storage"
)

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		err := godotenv.Load(".env")
		if err != nil {
			err = godotenv.Load("environments/.env.development")
			if err != nil {
				log.Println("⚠️  No .env file found - checking environment variables")
			}
		}
	}

	// Initialize storage
	var store storage.Store

	switch {
	case os.Getenv("USE_MEMORY_STORE") == "true":
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()

	case database.Configured():
		log.Println("📦 Connecting to PostgreSQL database...")
		if err := database.Connect(); err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		log.Println("🔄 Running database migrations...")
		err := database.DB.AutoMigrate(
			&models.Driver{},
			&models.Trip{},
			&models.Booking{},
			&models.Rating{},
			&models.Payment{},
			&models.Profile{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
		log.Println("✅ Using PostgreSQL database storage")

	default:
		// Boot anyway: every /api route renders a configuration hint
		log.Println("⚠️  Storage not configured - set DB_NAME or USE_MEMORY_STORE=true")
	}

	// Set global instance
	storage.SetStore(store)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Swift Ride Admin API v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Root endpoint with service and storage status
	app.Get("/", func(c *fiber.Ctx) error {
		response := fiber.Map{
			"service": "Swift Ride Admin API",
			"version": "1.0.0",
			"status":  "healthy",
			"storage": getStorageType(store),
		}

		if store != nil {
			var tripCount, userCount, paymentCount int64
			tripCount, _ = store.CountTrips()
			userCount, _ = store.CountProfiles()
			paymentCount, _ = store.CountPayments()

			response["tables"] = fiber.Map{
				"trips":    tripCount,
				"users":    userCount,
				"payments": paymentCount,
			}
		}

		return c.JSON(response)
	})

	// Health check endpoint for monitoring
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		statusCode := 200

		if database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "unhealthy"
				statusCode = 503
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"services": fiber.Map{
				"database": status == "healthy",
				"storage":  store != nil,
			},
		})
	})

	// Setup routes
	routes.SetupRoutes(app, store)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Swift Ride Admin API starting on port %s", port)
	log.Printf("📊 Storage: %s", getStorageType(store))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func getStorageType(store storage.Store) string {
	switch store.(type) {
	case *storage.MemoryStore:
		return "In-Memory (Testing)"
	case *storage.DatabaseStore:
		return "PostgreSQL Database"
	default:
		return "Not configured"
	}
}
