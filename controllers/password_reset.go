package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
	"github.com/handyheroes/handyman-backend/redis"
	"github.com/handyheroes/handyman-backend/utils"
)

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return "pwreset:" + email
}

// ForgotPassword mails a one-time code and parks it in Redis with a TTL.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	otp := utils.GenerateOTP()
	if err := redis.Client.Set(redis.Ctx, otpKey(email), otp, otpTTL).Err(); err != nil {
		log.Printf("Failed to store reset OTP for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start password reset",
		})
	}

	if err := utils.SendPasswordResetEmail(user.Email, user.Name, otp); err != nil {
		log.Printf("Failed to send reset email to %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send reset email",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Password reset code sent",
	})
}

// ResetPassword verifies the one-time code and stores a fresh hash.
func ResetPassword(c *fiber.Ctx) error {
	type ResetInput struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"new_password"`
	}

	input := new(ResetInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.OTP == "" || input.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	stored, err := redis.Client.Get(redis.Ctx, otpKey(email)).Result()
	if err != nil || stored != input.OTP {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired code",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	if err := db.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset password",
		})
	}

	redis.Client.Del(redis.Ctx, otpKey(email))

	return c.JSON(fiber.Map{
		"message": "Password has been reset",
	})
}
