package models

import "time"

// Booking represents a seat reservation a user made on a trip
type Booking struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	TripID int    `json:"trip_id"`
	UserID string `json:"user_id"`
	Seats  int    `json:"seats"`

	// Status is an open set — older rows have no status at all
	Status string `json:"status"`

	// Cancellation details, meaningful only when status is "cancelled"
	CancellationReason string     `json:"cancellation_reason"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`

	// Rating is a derived display annotation attached after fetch by
	// matching against the ratings table. Never written back.
	Rating *int `json:"rating" gorm:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// BookingStatus constants
const (
	BookingStatusBooked    = "booked"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)
