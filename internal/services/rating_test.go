package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/admin-api/internal/models"
	"github.com/swiftride/admin-api/internal/storage"
)

func seedRatedBooking(t *testing.T, store *storage.MemoryStore, driverID, status string, rating int) *models.Booking {
	t.Helper()
	booking, err := store.CreateBooking(&models.Booking{
		TripID: 1,
		UserID: "user-1",
		Seats:  1,
		Status: status,
	})
	require.NoError(t, err)
	_, err = store.CreateRating(&models.Rating{
		BookingID: booking.ID,
		DriverID:  driverID,
		Rating:    rating,
	})
	require.NoError(t, err)
	return booking
}

func TestAggregateDriverRatingNoRatings(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	summary, err := svc.AggregateDriverRating("driver-1")
	require.NoError(t, err)
	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestAggregateDriverRatingOnlyNonCompletedBookings(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	seedRatedBooking(t, store, "driver-1", models.BookingStatusCancelled, 5)
	seedRatedBooking(t, store, "driver-1", models.BookingStatusBooked, 4)

	summary, err := svc.AggregateDriverRating("driver-1")
	require.NoError(t, err)
	assert.Nil(t, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestAggregateDriverRatingCompletedOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 5)
	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 4)
	// a cancelled booking's rating must not drag the average down
	seedRatedBooking(t, store, "driver-1", models.BookingStatusCancelled, 1)

	summary, err := svc.AggregateDriverRating("driver-1")
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 4.5, *summary.Average)
	assert.Equal(t, 2, summary.Count)
}

func TestAggregateDriverRatingRounding(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 5)
	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 5)
	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 4)

	summary, err := svc.AggregateDriverRating("driver-1")
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	// 14/3 = 4.666... rounds to one decimal
	assert.Equal(t, 4.7, *summary.Average)
	assert.Equal(t, 3, summary.Count)
}

func TestAggregateDriverRatingIsolatedPerDriver(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	seedRatedBooking(t, store, "driver-1", models.BookingStatusCompleted, 5)
	seedRatedBooking(t, store, "driver-2", models.BookingStatusCompleted, 1)

	summary, err := svc.AggregateDriverRating("driver-1")
	require.NoError(t, err)
	require.NotNil(t, summary.Average)
	assert.Equal(t, 5.0, *summary.Average)
	assert.Equal(t, 1, summary.Count)
}

func TestAttachRatingsEmptyInput(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	require.NoError(t, svc.AttachRatings(nil))
	require.NoError(t, svc.AttachRatings([]*models.Booking{}))
}

func TestAttachRatingsMatching(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	rated, err := store.CreateBooking(&models.Booking{TripID: 1, UserID: "u1", Seats: 1, Status: models.BookingStatusCompleted})
	require.NoError(t, err)
	unrated, err := store.CreateBooking(&models.Booking{TripID: 1, UserID: "u2", Seats: 2, Status: models.BookingStatusBooked})
	require.NoError(t, err)

	_, err = store.CreateRating(&models.Rating{BookingID: rated.ID, DriverID: "driver-1", Rating: 3})
	require.NoError(t, err)

	bookings := []*models.Booking{rated, unrated}
	require.NoError(t, svc.AttachRatings(bookings))

	require.NotNil(t, rated.Rating)
	assert.Equal(t, 3, *rated.Rating)
	assert.Nil(t, unrated.Rating)
}

func TestAttachRatingsIgnoresStatus(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	cancelled, err := store.CreateBooking(&models.Booking{TripID: 1, UserID: "u1", Seats: 1, Status: models.BookingStatusCancelled})
	require.NoError(t, err)
	_, err = store.CreateRating(&models.Rating{BookingID: cancelled.ID, DriverID: "driver-1", Rating: 2})
	require.NoError(t, err)

	require.NoError(t, svc.AttachRatings([]*models.Booking{cancelled}))

	// enrichment attaches regardless of status; views decide visibility
	require.NotNil(t, cancelled.Rating)
	assert.Equal(t, 2, *cancelled.Rating)
}

func TestAttachRatingsDuplicateLastWins(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewRatingService(store)

	booking, err := store.CreateBooking(&models.Booking{TripID: 1, UserID: "u1", Seats: 1, Status: models.BookingStatusCompleted})
	require.NoError(t, err)
	_, err = store.CreateRating(&models.Rating{BookingID: booking.ID, DriverID: "driver-1", Rating: 2})
	require.NoError(t, err)
	_, err = store.CreateRating(&models.Rating{BookingID: booking.ID, DriverID: "driver-1", Rating: 4})
	require.NoError(t, err)

	require.NoError(t, svc.AttachRatings([]*models.Booking{booking}))

	require.NotNil(t, booking.Rating)
	assert.Equal(t, 4, *booking.Rating)
}
