package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/swiftride/admin-api/internal/models"
)

// DatabaseStore implements Store on top of a GORM connection
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed storage
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}

// Driver operations

func (s *DatabaseStore) CreateDriver(driver *models.Driver) (*models.Driver, error) {
	if err := s.db.Create(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DatabaseStore) GetDriver(id string) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err, "driver "+id)
	}
	return &driver, nil
}

func (s *DatabaseStore) GetAllDrivers() ([]*models.Driver, error) {
	var drivers []*models.Driver
	if err := s.db.Order("id").Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

// Trip operations

func (s *DatabaseStore) CreateTrip(trip *models.Trip) (*models.Trip, error) {
	if err := s.db.Create(trip).Error; err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *DatabaseStore) GetTrip(id int) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err, fmt.Sprintf("trip %d", id))
	}
	return &trip, nil
}

func (s *DatabaseStore) GetAllTrips() ([]*models.Trip, error) {
	var trips []*models.Trip
	if err := s.db.Order("depart_time").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *DatabaseStore) GetUpcomingTrips(after time.Time) ([]*models.Trip, error) {
	var trips []*models.Trip
	cutoff := after.UTC().Format(time.RFC3339)
	err := s.db.Where("depart_time >= ?", cutoff).Order("depart_time").Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *DatabaseStore) GetTripsByDriver(driverID string) ([]*models.Trip, error) {
	var trips []*models.Trip
	err := s.db.Where("driver_id = ?", driverID).Order("depart_time desc").Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (s *DatabaseStore) UpdateTrip(trip *models.Trip) error {
	res := s.db.Model(&models.Trip{}).Where("id = ?", trip.ID).Updates(map[string]interface{}{
		"from_city":   trip.FromCity,
		"to_city":     trip.ToCity,
		"from_label":  trip.FromLabel,
		"to_label":    trip.ToLabel,
		"depart_time": trip.DepartTime,
		"arrive_time": trip.ArriveTime,
		"price":       trip.Price,
		"total_seats": trip.TotalSeats,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("trip %d: %w", trip.ID, ErrNotFound)
	}
	return nil
}

func (s *DatabaseStore) DeleteTrip(id int) error {
	res := s.db.Delete(&models.Trip{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	return nil
}

// Booking operations

func (s *DatabaseStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if err := s.db.Create(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *DatabaseStore) GetAllBookings() ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := s.db.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) GetBookingsByTrips(tripIDs []int) ([]*models.Booking, error) {
	if len(tripIDs) == 0 {
		return nil, nil
	}
	var bookings []*models.Booking
	err := s.db.Where("trip_id IN ?", tripIDs).Order("created_at desc").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) GetCompletedBookingIDs(bookingIDs []int) ([]int, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}
	var ids []int
	err := s.db.Model(&models.Booking{}).
		Where("id IN ? AND status = ?", bookingIDs, models.BookingStatusCompleted).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Rating operations

func (s *DatabaseStore) CreateRating(rating *models.Rating) (*models.Rating, error) {
	if err := s.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *DatabaseStore) GetRatingsByDriver(driverID string) ([]*models.Rating, error) {
	var ratings []*models.Rating
	if err := s.db.Where("driver_id = ?", driverID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *DatabaseStore) GetRatingsByBookings(bookingIDs []int) ([]*models.Rating, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}
	var ratings []*models.Rating
	if err := s.db.Where("booking_id IN ?", bookingIDs).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// Payment operations

func (s *DatabaseStore) CreatePayment(payment *models.Payment) (*models.Payment, error) {
	if err := s.db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *DatabaseStore) GetPayment(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err, "payment "+id)
	}
	return &payment, nil
}

func (s *DatabaseStore) GetAllPayments() ([]*models.Payment, error) {
	var payments []*models.Payment
	if err := s.db.Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *DatabaseStore) UpdatePaymentStatus(id string, status string) error {
	res := s.db.Model(&models.Payment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment %s: %w", id, ErrNotFound)
	}
	return nil
}

// Profile operations

func (s *DatabaseStore) CreateProfile(profile *models.Profile) (*models.Profile, error) {
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *DatabaseStore) GetProfile(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, wrapNotFound(err, "profile "+id)
	}
	return &profile, nil
}

func (s *DatabaseStore) GetAllProfiles() ([]*models.Profile, error) {
	var profiles []*models.Profile
	if err := s.db.Order("created_at desc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *DatabaseStore) SetProfileBlocked(id string, blocked bool) error {
	res := s.db.Model(&models.Profile{}).Where("id = ?", id).Update("blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return nil
}

// Dashboard counts

func (s *DatabaseStore) CountTrips() (int64, error) {
	var count int64
	err := s.db.Model(&models.Trip{}).Count(&count).Error
	return count, err
}

func (s *DatabaseStore) CountProfiles() (int64, error) {
	var count int64
	err := s.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}

func (s *DatabaseStore) CountPayments() (int64, error) {
	var count int64
	err := s.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}

func (s *DatabaseStore) CountPayers() (int64, error) {
	var count int64
	err := s.db.Model(&models.Profile{}).
		Where("wallet_balance > 0 AND email IS NOT NULL AND email <> ''").
		Count(&count).Error
	return count, err
}
