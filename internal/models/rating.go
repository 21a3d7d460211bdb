package models

// Rating is a 1-5 score a user left for a booking. The driver id is
// denormalized onto the row so driver-level aggregation doesn't need to
// walk bookings and trips first.
type Rating struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	BookingID int    `json:"booking_id"`
	DriverID  string `json:"driver_id"`
	Rating    int    `json:"rating"` // 1-5
}
