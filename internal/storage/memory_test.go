package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftride/admin-api/internal/models"
)

func TestMemoryStoreDeleteTripRemovesOnlyThatTrip(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateTrip(&models.Trip{FromCity: "Islamabad", ToCity: "Lahore", DepartTime: "2026-09-01T08:00:00Z"})
	require.NoError(t, err)
	second, err := store.CreateTrip(&models.Trip{FromCity: "Lahore", ToCity: "Karachi", DepartTime: "2026-09-02T08:00:00Z"})
	require.NoError(t, err)

	require.NoError(t, store.DeleteTrip(first.ID))

	_, err = store.GetTrip(first.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	trips, err := store.GetAllTrips()
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, second.ID, trips[0].ID)
}

func TestMemoryStoreDeleteTripMissing(t *testing.T) {
	store := NewMemoryStore()
	assert.ErrorIs(t, store.DeleteTrip(42), ErrNotFound)
}

func TestMemoryStoreTripsOrderedByDeparture(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateTrip(&models.Trip{FromCity: "B", DepartTime: "2026-09-02T08:00:00Z"})
	require.NoError(t, err)
	_, err = store.CreateTrip(&models.Trip{FromCity: "A", DepartTime: "2026-09-01T08:00:00Z"})
	require.NoError(t, err)

	trips, err := store.GetAllTrips()
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "A", trips[0].FromCity)
	assert.Equal(t, "B", trips[1].FromCity)
}

func TestMemoryStoreUpcomingTrips(t *testing.T) {
	store := NewMemoryStore()

	past := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	future := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	_, err := store.CreateTrip(&models.Trip{FromCity: "Past", DepartTime: past})
	require.NoError(t, err)
	_, err = store.CreateTrip(&models.Trip{FromCity: "Future", DepartTime: future})
	require.NoError(t, err)

	trips, err := store.GetUpcomingTrips(time.Now())
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "Future", trips[0].FromCity)
}

func TestMemoryStoreTripsByDriverNewestDepartureFirst(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateTrip(&models.Trip{DriverID: "d1", FromCity: "Old", DepartTime: "2026-09-01T08:00:00Z"})
	require.NoError(t, err)
	_, err = store.CreateTrip(&models.Trip{DriverID: "d1", FromCity: "New", DepartTime: "2026-09-03T08:00:00Z"})
	require.NoError(t, err)
	_, err = store.CreateTrip(&models.Trip{DriverID: "d2", FromCity: "Other", DepartTime: "2026-09-02T08:00:00Z"})
	require.NoError(t, err)

	trips, err := store.GetTripsByDriver("d1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "New", trips[0].FromCity)
	assert.Equal(t, "Old", trips[1].FromCity)
}

func TestMemoryStoreUpdateTripKeepsCreatedAt(t *testing.T) {
	store := NewMemoryStore()

	trip, err := store.CreateTrip(&models.Trip{FromCity: "A", ToCity: "B", DepartTime: "2026-09-01T08:00:00Z"})
	require.NoError(t, err)
	created := trip.CreatedAt

	updated := &models.Trip{ID: trip.ID, FromCity: "A", ToCity: "C", DepartTime: trip.DepartTime}
	require.NoError(t, store.UpdateTrip(updated))

	got, err := store.GetTrip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "C", got.ToCity)
	assert.Equal(t, created, got.CreatedAt)
}

func TestMemoryStoreUpdateTripKeepsDriver(t *testing.T) {
	store := NewMemoryStore()

	trip, err := store.CreateTrip(&models.Trip{DriverID: "drv-1", FromCity: "A", ToCity: "B", DepartTime: "2026-09-01T08:00:00Z"})
	require.NoError(t, err)

	// the edit form carries no driver_id; the association must survive
	updated := &models.Trip{ID: trip.ID, FromCity: "A", ToCity: "C", DepartTime: trip.DepartTime, Price: 900}
	require.NoError(t, store.UpdateTrip(updated))

	got, err := store.GetTrip(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "drv-1", got.DriverID)
	assert.Equal(t, "C", got.ToCity)

	trips, err := store.GetTripsByDriver("drv-1")
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, trip.ID, trips[0].ID)
}

func TestMemoryStoreCompletedBookingIDs(t *testing.T) {
	store := NewMemoryStore()

	done, err := store.CreateBooking(&models.Booking{TripID: 1, Status: models.BookingStatusCompleted})
	require.NoError(t, err)
	open, err := store.CreateBooking(&models.Booking{TripID: 1, Status: models.BookingStatusBooked})
	require.NoError(t, err)

	ids, err := store.GetCompletedBookingIDs([]int{done.ID, open.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []int{done.ID}, ids)
}

func TestMemoryStorePaymentStatusUpdate(t *testing.T) {
	store := NewMemoryStore()

	payment, err := store.CreatePayment(&models.Payment{Amount: 1200, Status: models.PaymentStatusSucceeded, Provider: "stripe"})
	require.NoError(t, err)
	require.NotEmpty(t, payment.ID)

	require.NoError(t, store.UpdatePaymentStatus(payment.ID, models.PaymentStatusRefunded))

	got, err := store.GetPayment(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRefunded, got.Status)

	assert.ErrorIs(t, store.UpdatePaymentStatus("missing", models.PaymentStatusRefunded), ErrNotFound)
}

func TestMemoryStoreProfileBlockToggle(t *testing.T) {
	store := NewMemoryStore()

	profile, err := store.CreateProfile(&models.Profile{FullName: "Ayesha", Email: "ayesha@example.com"})
	require.NoError(t, err)

	require.NoError(t, store.SetProfileBlocked(profile.ID, true))
	got, err := store.GetProfile(profile.ID)
	require.NoError(t, err)
	assert.True(t, got.Blocked)
}

func TestMemoryStoreCountPayers(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateProfile(&models.Profile{Email: "a@example.com", WalletBalance: 500})
	require.NoError(t, err)
	// no email: doesn't count even with a balance
	_, err = store.CreateProfile(&models.Profile{WalletBalance: 300})
	require.NoError(t, err)
	// empty wallet: doesn't count
	_, err = store.CreateProfile(&models.Profile{Email: "b@example.com"})
	require.NoError(t, err)

	payers, err := store.CountPayers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), payers)

	total, err := store.CountProfiles()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestMemoryStoreDriverNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.GetDriver("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
