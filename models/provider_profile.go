package models

import (
	"time"
)

// Verification states of a provider application. Every resubmission of the
// profile moves the provider back to StatusPending, even if they were
// verified before.
const (
	StatusPending  = "pending"
	StatusVerified = "verified"
	StatusRejected = "rejected"
)

// PaymentDetails is stored inline on the profile row as JSON.
type PaymentDetails struct {
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Provider      string `json:"provider"`
}

// ProviderProfile holds the business side of a provider account. It is
// replaced wholesale whenever the user (re)applies as a provider.
type ProviderProfile struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"uniqueIndex"`
	BusinessName   string         `json:"business_name"`
	Description    string         `json:"description"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	PhoneNumber    string         `json:"phone_number"`
	Website        string         `json:"website"`
	Services       []string       `json:"services" gorm:"serializer:json"`
	Certifications []string       `json:"certifications" gorm:"serializer:json"`
	Availability   []string       `json:"availability" gorm:"serializer:json"`
	HourlyRate     float64        `json:"hourly_rate"`
	PaymentDetails PaymentDetails `json:"payment_details" gorm:"serializer:json"`
	Rating         float64        `json:"rating"`
	TotalJobsDone  int            `json:"total_jobs_done"`
	Transactions   int            `json:"transactions"`
	SuccessRate    float64        `json:"success_rate"`
	Status         string         `json:"status" gorm:"default:pending"`
	IsVerified     bool           `json:"is_verified"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
