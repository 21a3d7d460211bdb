package models

import "time"

// Payment represents a wallet top-up or trip payment processed by the
// payment provider. Status is whatever the provider reported — only
// "succeeded" payments are refundable from the dashboard.
type Payment struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Provider string  `json:"provider"` // e.g. "stripe"

	CreatedAt time.Time `json:"created_at"`
}

// PaymentStatus constants
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusRefunded  = "refunded"
)
