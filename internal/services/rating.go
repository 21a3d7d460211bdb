package services

import (
	"fmt"
	"math"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/storage"
)

// RatingService computes driver rating aggregates and attaches ratings
// onto fetched bookings for display.
type RatingService struct {
	store storage.Store
}

// NewRatingService creates a new rating service
func NewRatingService(store storage.Store) *RatingService {
	return &RatingService{store: store}
}

// AggregateDriverRating computes a driver's average rating over ratings
// whose booking is completed, rounded to one decimal. A rating on a
// cancelled or still-open booking never counts. When no qualifying
// rating exists the average is nil, not zero — the two are different
// states on the dashboard.
func (s *RatingService) AggregateDriverRating(driverID string) (models.RatingSummary, error) {
	ratings, err := s.store.GetRatingsByDriver(driverID)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("fetch ratings for driver %s: %w", driverID, err)
	}
	if len(ratings) == 0 {
		return models.RatingSummary{}, nil
	}

	bookingIDs := make([]int, 0, len(ratings))
	seen := make(map[int]bool, len(ratings))
	for _, r := range ratings {
		if !seen[r.BookingID] {
			seen[r.BookingID] = true
			bookingIDs = append(bookingIDs, r.BookingID)
		}
	}

	completedIDs, err := s.store.GetCompletedBookingIDs(bookingIDs)
	if err != nil {
		return models.RatingSummary{}, fmt.Errorf("fetch completed bookings for driver %s: %w", driverID, err)
	}
	completed := make(map[int]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	sum, count := 0, 0
	for _, r := range ratings {
		if completed[r.BookingID] {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return models.RatingSummary{}, nil
	}

	avg := math.Round(float64(sum)/float64(count)*10) / 10
	return models.RatingSummary{Average: &avg, Count: count}, nil
}

// AttachRatings sets each booking's transient Rating field by matching
// booking ids against the ratings table. Unlike the driver aggregate,
// no completion filter applies here — a cancelled booking that somehow
// carries a rating keeps it, and each view decides whether to show it.
func (s *RatingService) AttachRatings(bookings []*models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	bookingIDs := make([]int, 0, len(bookings))
	for _, b := range bookings {
		bookingIDs = append(bookingIDs, b.ID)
	}

	ratings, err := s.store.GetRatingsByBookings(bookingIDs)
	if err != nil {
		return fmt.Errorf("fetch ratings for bookings: %w", err)
	}

	// last row wins on duplicates, matching the source data model's
	// at-most-one-rating-per-booking assumption
	byBooking := make(map[int]int, len(ratings))
	for _, r := range ratings {
		byBooking[r.BookingID] = r.Rating
	}

	for _, b := range bookings {
		if value, ok := byBooking[b.ID]; ok {
			v := value
			b.Rating = &v
		} else {
			b.Rating = nil
		}
	}
	return nil
}
