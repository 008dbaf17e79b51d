package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
)

type ProviderInput struct {
	BusinessName   string                `json:"business_name"`
	Description    string                `json:"description"`
	Address        string                `json:"address"`
	City           string                `json:"city"`
	PhoneNumber    string                `json:"phone_number"`
	Website        string                `json:"website"`
	Services       []string              `json:"services"`
	Certifications []string              `json:"certifications"`
	Availability   []string              `json:"availability"`
	HourlyRate     float64               `json:"hourly_rate"`
	PaymentDetails models.PaymentDetails `json:"payment_details"`
}

// BuildProviderProfile turns an application payload into a fresh profile
// row. Collection fields default to empty, metrics to zero, and the
// verification state always starts over at pending.
func BuildProviderProfile(userID uint, input *ProviderInput) models.ProviderProfile {
	profile := models.ProviderProfile{
		UserID:         userID,
		BusinessName:   input.BusinessName,
		Description:    input.Description,
		Address:        input.Address,
		City:           input.City,
		PhoneNumber:    input.PhoneNumber,
		Website:        input.Website,
		Services:       input.Services,
		Certifications: input.Certifications,
		Availability:   input.Availability,
		HourlyRate:     input.HourlyRate,
		PaymentDetails: input.PaymentDetails,
		Status:         models.StatusPending,
		IsVerified:     false,
	}
	if profile.Services == nil {
		profile.Services = []string{}
	}
	if profile.Certifications == nil {
		profile.Certifications = []string{}
	}
	if profile.Availability == nil {
		profile.Availability = []string{}
	}
	return profile
}

// BecomeProvider switches the caller to the provider role and replaces the
// whole provider profile with the submitted one. Re-applying always resets
// the verification state back to pending, verified providers included.
func BecomeProvider(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	input := new(ProviderInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.BusinessName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing required fields",
			"details": []string{"business_name is required"},
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	profile := BuildProviderProfile(user.ID, input)

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("role", models.RoleProvider).Error; err != nil {
			return err
		}
		// Replace, not merge: any previous profile row goes away entirely
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.ProviderProfile{}).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		log.Printf("Failed to save provider profile for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save provider profile",
		})
	}

	if err := db.DB.Preload("ProviderProfile").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve updated profile",
		})
	}

	return c.JSON(user.Public())
}
