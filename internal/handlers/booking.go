package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/services"
	"github.com/swiftride/admin-api/internal/storage"
)

// BookingHandler handles the bookings roster
type BookingHandler struct {
	store         storage.Store
	ratingService *services.RatingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(store storage.Store, ratingService *services.RatingService) *BookingHandler {
	return &BookingHandler{
		store:         store,
		ratingService: ratingService,
	}
}

// GetBookings lists all bookings, newest first, with ratings attached.
// Unlike the driver detail page, the roster shows a booking's rating
// whatever its status — that asymmetry is intentional.
func (h *BookingHandler) GetBookings(c *fiber.Ctx) error {
	bookings, err := h.store.GetAllBookings()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve bookings",
		})
	}

	if err := h.ratingService.AttachRatings(bookings); err != nil {
		// degrade to unrated rows rather than failing the roster
		log.Printf("⚠️  Failed to attach ratings to bookings: %v", err)
	}

	if bookings == nil {
		bookings = []*models.Booking{}
	}
	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
