package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/handlers"
	"github.com/swiftride/admin-api/internal/middleware"
	"github.com/swiftride/admin-api/internal/services"
	"github.com/swiftride/admin-api/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store) {
	api := app.Group("/api")

	// No storage configured: every data route answers with a
	// configuration hint instead of attempting fetches.
	if store == nil {
		api.Use(func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Storage not configured - set DB_NAME (and DB_USER/DB_PASS) or USE_MEMORY_STORE=true",
			})
		})
		return
	}

	ratingService := services.NewRatingService(store)

	dashboardHandler := handlers.NewDashboardHandler(store)
	tripHandler := handlers.NewTripHandler(store)
	driverHandler := handlers.NewDriverHandler(store, ratingService)
	bookingHandler := handlers.NewBookingHandler(store, ratingService)
	paymentHandler := handlers.NewPaymentHandler(store)
	userHandler := handlers.NewUserHandler(store)

	// Dashboard
	api.Get("/overview", dashboardHandler.GetOverview)

	// Trips
	trips := api.Group("/trips")
	trips.Get("/", tripHandler.GetTrips)
	trips.Post("/", middleware.RequireAdmin(), tripHandler.CreateTrip)
	trips.Put("/:id", middleware.RequireAdmin(), tripHandler.UpdateTrip)
	trips.Delete("/:id", middleware.RequireAdmin(), tripHandler.DeleteTrip)

	// Drivers
	drivers := api.Group("/drivers")
	drivers.Get("/", driverHandler.GetDrivers)
	drivers.Get("/:id", driverHandler.GetDriverDetail)

	// Bookings
	api.Get("/bookings", bookingHandler.GetBookings)

	// Payments
	payments := api.Group("/payments")
	payments.Get("/", paymentHandler.GetPayments)
	payments.Post("/:id/refund", middleware.RequireAdmin(), paymentHandler.RefundPayment)

	// Users
	users := api.Group("/users")
	users.Get("/", userHandler.GetUsers)
	users.Post("/:id/block", middleware.RequireAdmin(), userHandler.ToggleBlock)
}
