package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/swiftride/admin-api/internal/models"
)

// MemoryStore holds all data in memory, for tests and local development
type MemoryStore struct {
	drivers  map[string]*models.Driver
	trips    map[int]*models.Trip
	bookings map[int]*models.Booking
	ratings  map[int]*models.Rating
	payments map[string]*models.Payment
	profiles map[string]*models.Profile

	// Mutexes for thread safety
	driverMu  sync.RWMutex
	tripMu    sync.RWMutex
	bookingMu sync.RWMutex
	ratingMu  sync.RWMutex
	paymentMu sync.RWMutex
	profileMu sync.RWMutex

	// Counters for integer ID generation
	tripCounter    int
	bookingCounter int
	ratingCounter  int
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		drivers:  make(map[string]*models.Driver),
		trips:    make(map[int]*models.Trip),
		bookings: make(map[int]*models.Booking),
		ratings:  make(map[int]*models.Rating),
		payments: make(map[string]*models.Payment),
		profiles: make(map[string]*models.Profile),
	}
}

// Driver operations

func (m *MemoryStore) CreateDriver(driver *models.Driver) (*models.Driver, error) {
	m.driverMu.Lock()
	defer m.driverMu.Unlock()

	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	if driver.CreatedAt.IsZero() {
		driver.CreatedAt = time.Now()
	}

	m.drivers[driver.ID] = driver
	return driver, nil
}

func (m *MemoryStore) GetDriver(id string) (*models.Driver, error) {
	m.driverMu.RLock()
	defer m.driverMu.RUnlock()

	driver, exists := m.drivers[id]
	if !exists {
		return nil, fmt.Errorf("driver %s: %w", id, ErrNotFound)
	}
	return driver, nil
}

func (m *MemoryStore) GetAllDrivers() ([]*models.Driver, error) {
	m.driverMu.RLock()
	defer m.driverMu.RUnlock()

	drivers := make([]*models.Driver, 0, len(m.drivers))
	for _, driver := range m.drivers {
		drivers = append(drivers, driver)
	}
	sort.Slice(drivers, func(i, j int) bool {
		return drivers[i].ID < drivers[j].ID
	})
	return drivers, nil
}

// Trip operations

func (m *MemoryStore) CreateTrip(trip *models.Trip) (*models.Trip, error) {
	m.tripMu.Lock()
	defer m.tripMu.Unlock()

	if trip.ID == 0 {
		m.tripCounter++
		trip.ID = m.tripCounter
	} else if trip.ID > m.tripCounter {
		m.tripCounter = trip.ID
	}
	trip.CreatedAt = time.Now()
	trip.UpdatedAt = time.Now()

	m.trips[trip.ID] = trip
	return trip, nil
}

func (m *MemoryStore) GetTrip(id int) (*models.Trip, error) {
	m.tripMu.RLock()
	defer m.tripMu.RUnlock()

	trip, exists := m.trips[id]
	if !exists {
		return nil, fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	return trip, nil
}

func (m *MemoryStore) GetAllTrips() ([]*models.Trip, error) {
	m.tripMu.RLock()
	defer m.tripMu.RUnlock()

	trips := make([]*models.Trip, 0, len(m.trips))
	for _, trip := range m.trips {
		trips = append(trips, trip)
	}
	// depart_time is ISO-8601, so lexicographic order is chronological
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].DepartTime < trips[j].DepartTime
	})
	return trips, nil
}

func (m *MemoryStore) GetUpcomingTrips(after time.Time) ([]*models.Trip, error) {
	trips, err := m.GetAllTrips()
	if err != nil {
		return nil, err
	}

	cutoff := after.UTC().Format(time.RFC3339)
	var upcoming []*models.Trip
	for _, trip := range trips {
		if trip.DepartTime >= cutoff {
			upcoming = append(upcoming, trip)
		}
	}
	return upcoming, nil
}

func (m *MemoryStore) GetTripsByDriver(driverID string) ([]*models.Trip, error) {
	m.tripMu.RLock()
	defer m.tripMu.RUnlock()

	var trips []*models.Trip
	for _, trip := range m.trips {
		if trip.DriverID == driverID {
			trips = append(trips, trip)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].DepartTime > trips[j].DepartTime
	})
	return trips, nil
}

func (m *MemoryStore) UpdateTrip(trip *models.Trip) error {
	m.tripMu.Lock()
	defer m.tripMu.Unlock()

	existing, exists := m.trips[trip.ID]
	if !exists {
		return fmt.Errorf("trip %d: %w", trip.ID, ErrNotFound)
	}
	// only the form fields change; the driver association and creation
	// time stay as stored
	trip.DriverID = existing.DriverID
	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = time.Now()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MemoryStore) DeleteTrip(id int) error {
	m.tripMu.Lock()
	defer m.tripMu.Unlock()

	if _, exists := m.trips[id]; !exists {
		return fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	delete(m.trips, id)
	return nil
}

// Booking operations

func (m *MemoryStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	if booking.ID == 0 {
		m.bookingCounter++
		booking.ID = m.bookingCounter
	} else if booking.ID > m.bookingCounter {
		m.bookingCounter = booking.ID
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	m.bookings[booking.ID] = booking
	return booking, nil
}

func (m *MemoryStore) GetAllBookings() ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	bookings := make([]*models.Booking, 0, len(m.bookings))
	for _, booking := range m.bookings {
		bookings = append(bookings, booking)
	}
	sortBookingsNewestFirst(bookings)
	return bookings, nil
}

func (m *MemoryStore) GetBookingsByTrips(tripIDs []int) ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	wanted := make(map[int]bool, len(tripIDs))
	for _, id := range tripIDs {
		wanted[id] = true
	}

	var bookings []*models.Booking
	for _, booking := range m.bookings {
		if wanted[booking.TripID] {
			bookings = append(bookings, booking)
		}
	}
	sortBookingsNewestFirst(bookings)
	return bookings, nil
}

func (m *MemoryStore) GetCompletedBookingIDs(bookingIDs []int) ([]int, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	var completed []int
	for _, id := range bookingIDs {
		booking, exists := m.bookings[id]
		if exists && booking.Status == models.BookingStatusCompleted {
			completed = append(completed, id)
		}
	}
	return completed, nil
}

func sortBookingsNewestFirst(bookings []*models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// Rating operations

func (m *MemoryStore) CreateRating(rating *models.Rating) (*models.Rating, error) {
	m.ratingMu.Lock()
	defer m.ratingMu.Unlock()

	if rating.ID == 0 {
		m.ratingCounter++
		rating.ID = m.ratingCounter
	} else if rating.ID > m.ratingCounter {
		m.ratingCounter = rating.ID
	}

	m.ratings[rating.ID] = rating
	return rating, nil
}

func (m *MemoryStore) GetRatingsByDriver(driverID string) ([]*models.Rating, error) {
	m.ratingMu.RLock()
	defer m.ratingMu.RUnlock()

	var ratings []*models.Rating
	for _, rating := range m.ratings {
		if rating.DriverID == driverID {
			ratings = append(ratings, rating)
		}
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].ID < ratings[j].ID
	})
	return ratings, nil
}

func (m *MemoryStore) GetRatingsByBookings(bookingIDs []int) ([]*models.Rating, error) {
	m.ratingMu.RLock()
	defer m.ratingMu.RUnlock()

	wanted := make(map[int]bool, len(bookingIDs))
	for _, id := range bookingIDs {
		wanted[id] = true
	}

	var ratings []*models.Rating
	for _, rating := range m.ratings {
		if wanted[rating.BookingID] {
			ratings = append(ratings, rating)
		}
	}
	sort.Slice(ratings, func(i, j int) bool {
		return ratings[i].ID < ratings[j].ID
	})
	return ratings, nil
}

// Payment operations

func (m *MemoryStore) CreatePayment(payment *models.Payment) (*models.Payment, error) {
	m.paymentMu.Lock()
	defer m.paymentMu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}

	m.payments[payment.ID] = payment
	return payment, nil
}

func (m *MemoryStore) GetPayment(id string) (*models.Payment, error) {
	m.paymentMu.RLock()
	defer m.paymentMu.RUnlock()

	payment, exists := m.payments[id]
	if !exists {
		return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	return payment, nil
}

func (m *MemoryStore) GetAllPayments() ([]*models.Payment, error) {
	m.paymentMu.RLock()
	defer m.paymentMu.RUnlock()

	payments := make([]*models.Payment, 0, len(m.payments))
	for _, payment := range m.payments {
		payments = append(payments, payment)
	}
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].ID > payments[j].ID
		}
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

func (m *MemoryStore) UpdatePaymentStatus(id string, status string) error {
	m.paymentMu.Lock()
	defer m.paymentMu.Unlock()

	payment, exists := m.payments[id]
	if !exists {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	payment.Status = status
	return nil
}

// Profile operations

func (m *MemoryStore) CreateProfile(profile *models.Profile) (*models.Profile, error) {
	m.profileMu.Lock()
	defer m.profileMu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	m.profiles[profile.ID] = profile
	return profile, nil
}

func (m *MemoryStore) GetProfile(id string) (*models.Profile, error) {
	m.profileMu.RLock()
	defer m.profileMu.RUnlock()

	profile, exists := m.profiles[id]
	if !exists {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return profile, nil
}

func (m *MemoryStore) GetAllProfiles() ([]*models.Profile, error) {
	m.profileMu.RLock()
	defer m.profileMu.RUnlock()

	profiles := make([]*models.Profile, 0, len(m.profiles))
	for _, profile := range m.profiles {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].CreatedAt.Equal(profiles[j].CreatedAt) {
			return profiles[i].ID > profiles[j].ID
		}
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles, nil
}

func (m *MemoryStore) SetProfileBlocked(id string, blocked bool) error {
	m.profileMu.Lock()
	defer m.profileMu.Unlock()

	profile, exists := m.profiles[id]
	if !exists {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	profile.Blocked = blocked
	return nil
}

// Dashboard counts

func (m *MemoryStore) CountTrips() (int64, error) {
	m.tripMu.RLock()
	defer m.tripMu.RUnlock()
	return int64(len(m.trips)), nil
}

func (m *MemoryStore) CountProfiles() (int64, error) {
	m.profileMu.RLock()
	defer m.profileMu.RUnlock()
	return int64(len(m.profiles)), nil
}

func (m *MemoryStore) CountPayments() (int64, error) {
	m.paymentMu.RLock()
	defer m.paymentMu.RUnlock()
	return int64(len(m.payments)), nil
}

// CountPayers counts profiles that have money in their wallet and a
// known email — the "users who have paid" dashboard tile.
func (m *MemoryStore) CountPayers() (int64, error) {
	m.profileMu.RLock()
	defer m.profileMu.RUnlock()

	var count int64
	for _, profile := range m.profiles {
		if profile.WalletBalance > 0 && strings.TrimSpace(profile.Email) != "" {
			count++
		}
	}
	return count, nil
}
