package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/handyheroes/handyman-backend/controllers"
	"github.com/handyheroes/handyman-backend/middleware"
)

// SetupAuthRoutes configures the core service surface: registration,
// login, profile and the provider transition.
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Brute-force throttle on the credential entrypoints
	credentialLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
	})

	// Public routes
	auth.Post("/register", credentialLimiter, controllers.Register)
	auth.Post("/login", credentialLimiter, controllers.Login)
	auth.Post("/forgot-password", credentialLimiter, controllers.ForgotPassword)
	auth.Post("/reset-password", credentialLimiter, controllers.ResetPassword)

	// Protected routes
	auth.Get("/profile", middleware.Protected(), controllers.GetProfile)
	auth.Put("/profile", middleware.Protected(), controllers.UpdateProfile)
	auth.Post("/profile/photo", middleware.Protected(), controllers.UploadProfilePhoto)
	auth.Post("/provider", middleware.Protected(), controllers.BecomeProvider)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)

	app.Get("/api/health", controllers.HealthCheck)
}
