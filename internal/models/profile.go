package models

import "time"

// Profile represents a rider account
type Profile struct {
	ID            string  `json:"id" gorm:"primaryKey"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	WalletBalance float64 `json:"wallet_balance"`
	Blocked       bool    `json:"blocked" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
}
