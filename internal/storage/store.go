package storage

import (
	"sync"
	"time"

	"github.com/swiftride/admin-api/internal/models"
)

var (
	storeInstance Store
	storeOnce     sync.Once
)

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Driver operations
	CreateDriver(driver *models.Driver) (*models.Driver, error)
	GetDriver(id string) (*models.Driver, error)
	GetAllDrivers() ([]*models.Driver, error)

	// Trip operations
	CreateTrip(trip *models.Trip) (*models.Trip, error)
	GetTrip(id int) (*models.Trip, error)
	GetAllTrips() ([]*models.Trip, error)
	GetUpcomingTrips(after time.Time) ([]*models.Trip, error)
	GetTripsByDriver(driverID string) ([]*models.Trip, error)
	UpdateTrip(trip *models.Trip) error
	DeleteTrip(id int) error

	// Booking operations
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetAllBookings() ([]*models.Booking, error)
	GetBookingsByTrips(tripIDs []int) ([]*models.Booking, error)
	GetCompletedBookingIDs(bookingIDs []int) ([]int, error)

	// Rating operations
	CreateRating(rating *models.Rating) (*models.Rating, error)
	GetRatingsByDriver(driverID string) ([]*models.Rating, error)
	GetRatingsByBookings(bookingIDs []int) ([]*models.Rating, error)

	// Payment operations
	CreatePayment(payment *models.Payment) (*models.Payment, error)
	GetPayment(id string) (*models.Payment, error)
	GetAllPayments() ([]*models.Payment, error)
	UpdatePaymentStatus(id string, status string) error

	// Profile operations
	CreateProfile(profile *models.Profile) (*models.Profile, error)
	GetProfile(id string) (*models.Profile, error)
	GetAllProfiles() ([]*models.Profile, error)
	SetProfileBlocked(id string, blocked bool) error

	// Dashboard counts
	CountTrips() (int64, error)
	CountProfiles() (int64, error)
	CountPayments() (int64, error)
	CountPayers() (int64, error)
}
