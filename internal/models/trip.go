package models

import "time"

// Trip represents a scheduled ride between two cities
type Trip struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	DriverID string `json:"driver_id"`

	// Route details. The city pair is the newer representation; the
	// free-form labels predate it and the rider app still writes both,
	// so the dashboard keeps the two in parallel.
	FromCity  string `json:"from_city"`
	ToCity    string `json:"to_city"`
	FromLabel string `json:"from" gorm:"column:from_label"`
	ToLabel   string `json:"to" gorm:"column:to_label"`

	// Timing — ISO-8601 strings as stored by the rider app
	DepartTime string `json:"depart_time"`
	ArriveTime string `json:"arrive_time"`

	// Pricing and capacity
	Price      float64 `json:"price"`
	TotalSeats int     `json:"total_seats"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TripInput carries the editable trip fields from the admin form
type TripInput struct {
	FromCity   string  `json:"from_city"`
	ToCity     string  `json:"to_city"`
	FromLabel  string  `json:"from"`
	ToLabel    string  `json:"to"`
	DepartTime string  `json:"depart_time"`
	ArriveTime string  `json:"arrive_time"`
	Price      float64 `json:"price"`
	TotalSeats int     `json:"total_seats"`
}
