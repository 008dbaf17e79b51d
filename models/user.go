package models

import (
	"time"
)

// Role values a user can hold. The set is closed; authorization checks
// compare against these constants directly.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// IsValidRole reports whether role is one of the known role values.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleProvider || role == RoleAdmin
}

type User struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Name            string           `json:"name"`
	Email           string           `json:"email" gorm:"uniqueIndex"`
	Password        string           `json:"-"`
	Role            string           `json:"role" gorm:"default:user"`
	Phone           string           `json:"phone,omitempty"`
	Address         string           `json:"address,omitempty"`
	City            string           `json:"city,omitempty"`
	ProfilePhotoURL string           `json:"profile_photo_url,omitempty"`
	IsVerified      bool             `json:"is_verified"`
	IsActive        bool             `json:"is_active" gorm:"default:true"`
	LastActivity    time.Time        `json:"last_activity"`
	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Public strips everything clients must not see. The password hash is
// already hidden by the json tag; the provider profile is hidden for
// anyone who is not a provider.
func (u *User) Public() *User {
	if u.Role != RoleProvider {
		u.ProviderProfile = nil
	}
	return u
}
