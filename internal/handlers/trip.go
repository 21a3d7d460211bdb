package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/storage"
)

// TripHandler handles trip roster requests
type TripHandler struct {
	store storage.Store
}

// NewTripHandler creates a new trip handler
func NewTripHandler(store storage.Store) *TripHandler {
	return &TripHandler{store: store}
}

// GetTrips lists trips ordered by departure time. With ?upcoming=true
// only trips departing from now on are returned.
func (h *TripHandler) GetTrips(c *fiber.Ctx) error {
	var (
		trips []*models.Trip
		err   error
	)
	if c.QueryBool("upcoming") {
		trips, err = h.store.GetUpcomingTrips(time.Now())
	} else {
		trips, err = h.store.GetAllTrips()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve trips",
		})
	}

	return c.JSON(fiber.Map{
		"trips": trips,
		"count": len(trips),
	})
}

// CreateTrip creates a trip from the admin form payload
func (h *TripHandler) CreateTrip(c *fiber.Ctx) error {
	var req models.TripInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	trip, err := h.store.CreateTrip(&models.Trip{
		FromCity:   req.FromCity,
		ToCity:     req.ToCity,
		FromLabel:  req.FromLabel,
		ToLabel:    req.ToLabel,
		DepartTime: req.DepartTime,
		ArriveTime: req.ArriveTime,
		Price:      req.Price,
		TotalSeats: req.TotalSeats,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create trip",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// UpdateTrip overwrites the editable fields of an existing trip
func (h *TripHandler) UpdateTrip(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trip ID",
		})
	}

	var req models.TripInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	trip := &models.Trip{
		ID:         id,
		FromCity:   req.FromCity,
		ToCity:     req.ToCity,
		FromLabel:  req.FromLabel,
		ToLabel:    req.ToLabel,
		DepartTime: req.DepartTime,
		ArriveTime: req.ArriveTime,
		Price:      req.Price,
		TotalSeats: req.TotalSeats,
	}
	if err := h.store.UpdateTrip(trip); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update trip",
		})
	}

	// re-read so the response carries the stored record, including the
	// fields the form doesn't touch (driver association, timestamps)
	updated, err := h.store.GetTrip(id)
	if err != nil {
		updated = trip
	}

	return c.JSON(fiber.Map{
		"message": "Trip updated successfully",
		"trip":    updated,
	})
}

// DeleteTrip removes a trip by id. There is no confirmation step and
// no cascade — bookings pointing at the trip are left to the backend's
// own constraints.
func (h *TripHandler) DeleteTrip(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trip ID",
		})
	}

	if err := h.store.DeleteTrip(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete trip",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Trip deleted successfully",
	})
}
