package models

import "time"

// Driver represents a driver account managed outside this dashboard.
// Drivers are created by the rider app's onboarding flow; the admin
// surface only reads them.
type Driver struct {
	ID       string `json:"id" gorm:"primaryKey"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary is a driver's aggregate over completed-booking ratings.
// Average is nil (JSON null) when the driver has no qualifying ratings —
// "no ratings" and "rated zero" are different states.
type RatingSummary struct {
	Average *float64 `json:"average_rating"`
	Count   int      `json:"total_ratings"`
}
