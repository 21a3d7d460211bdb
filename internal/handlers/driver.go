package handlers

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/services"
	"github.com/swiftride/admin-api/internal/storage"
)

// DriverHandler handles driver roster and detail requests
type DriverHandler struct {
	store         storage.Store
	ratingService *services.RatingService
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(store storage.Store, ratingService *services.RatingService) *DriverHandler {
	return &DriverHandler{
		store:         store,
		ratingService: ratingService,
	}
}

// driverRow is a roster entry with the driver's aggregate attached
type driverRow struct {
	models.Driver
	models.RatingSummary
}

// GetDrivers lists drivers with their completed-booking rating
// aggregates. Aggregations run concurrently, one per driver, and the
// roster is returned only once all of them have resolved. A failed
// aggregation logs and renders as "no ratings" for that driver.
func (h *DriverHandler) GetDrivers(c *fiber.Ctx) error {
	drivers, err := h.store.GetAllDrivers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve drivers",
		})
	}

	rows := make([]driverRow, len(drivers))
	var wg sync.WaitGroup
	for i, driver := range drivers {
		rows[i].Driver = *driver
		wg.Add(1)
		go func(i int, driverID string) {
			defer wg.Done()
			summary, err := h.ratingService.AggregateDriverRating(driverID)
			if err != nil {
				log.Printf("⚠️  Rating aggregation failed for driver %s: %v", driverID, err)
				return
			}
			rows[i].RatingSummary = summary
		}(i, driver.ID)
	}
	wg.Wait()

	return c.JSON(fiber.Map{
		"drivers": rows,
		"count":   len(rows),
	})
}

// driverBookingRow applies the detail page's display rules on top of
// the enriched booking: the rating shows only for completed bookings,
// the cancellation reason only for cancelled ones.
type driverBookingRow struct {
	ID                 int       `json:"id"`
	TripID             int       `json:"trip_id"`
	UserID             string    `json:"user_id"`
	Seats              int       `json:"seats"`
	Status             string    `json:"status"`
	Rating             *int      `json:"rating"`
	CancellationReason *string   `json:"cancellation_reason"`
	CreatedAt          time.Time `json:"created_at"`
}

func toDriverBookingRow(b *models.Booking) driverBookingRow {
	row := driverBookingRow{
		ID:        b.ID,
		TripID:    b.TripID,
		UserID:    b.UserID,
		Seats:     b.Seats,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if b.Status == models.BookingStatusCompleted {
		row.Rating = b.Rating
	}
	if b.Status == models.BookingStatusCancelled {
		reason := b.CancellationReason
		if reason == "" {
			reason = "Reason not mentioned"
		}
		row.CancellationReason = &reason
	}
	return row
}

// GetDriverDetail returns one driver with trips (newest departure
// first), recent bookings across those trips, and the overall rating
// aggregate. An unknown id is an empty terminal state, not a failure.
func (h *DriverHandler) GetDriverDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	driver, err := h.store.GetDriver(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Driver not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve driver",
		})
	}

	trips, err := h.store.GetTripsByDriver(id)
	if err != nil {
		log.Printf("⚠️  Failed to fetch trips for driver %s: %v", id, err)
		trips = nil
	}

	var bookings []*models.Booking
	if len(trips) > 0 {
		tripIDs := make([]int, 0, len(trips))
		for _, trip := range trips {
			tripIDs = append(tripIDs, trip.ID)
		}
		bookings, err = h.store.GetBookingsByTrips(tripIDs)
		if err != nil {
			log.Printf("⚠️  Failed to fetch bookings for driver %s: %v", id, err)
			bookings = nil
		}
		if err := h.ratingService.AttachRatings(bookings); err != nil {
			log.Printf("⚠️  Failed to attach ratings for driver %s: %v", id, err)
		}
	}

	summary, err := h.ratingService.AggregateDriverRating(id)
	if err != nil {
		log.Printf("⚠️  Rating aggregation failed for driver %s: %v", id, err)
		summary = models.RatingSummary{}
	}

	rows := make([]driverBookingRow, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, toDriverBookingRow(booking))
	}

	if trips == nil {
		trips = []*models.Trip{}
	}
	return c.JSON(fiber.Map{
		"driver":         driver,
		"trips":          trips,
		"bookings":       rows,
		"average_rating": summary.Average,
		"total_ratings":  summary.Count,
	})
}
