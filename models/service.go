package models

import (
	"time"
)

// Pricing models for catalog entries.
const (
	PricingHourly = "hourly"
	PricingFixed  = "fixed"
	PricingQuote  = "quote"
)

// IsValidPricingModel reports whether m is a known pricing model.
func IsValidPricingModel(m string) bool {
	return m == PricingHourly || m == PricingFixed || m == PricingQuote
}

// Service is a catalog entry managed by the admin tier. The counter fields
// are denormalized and refreshed out of band by the cron job.
type Service struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"uniqueIndex:idx_services_name_category"`
	Category       string    `json:"category" gorm:"uniqueIndex:idx_services_name_category"`
	Description    string    `json:"description"`
	PricingModel   string    `json:"pricing_model" gorm:"default:hourly"`
	PriceMin       float64   `json:"price_min"`
	PriceMax       float64   `json:"price_max"`
	ProvidersCount int       `json:"providers_count"`
	AverageRating  float64   `json:"average_rating"`
	TotalBookings  int       `json:"total_bookings"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
