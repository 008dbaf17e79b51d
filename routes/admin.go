package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/handyheroes/handyman-backend/controllers"
	"github.com/handyheroes/handyman-backend/controllers/admin"
	"github.com/handyheroes/handyman-backend/middleware"
	"github.com/handyheroes/handyman-backend/models"
)

// SetupAdminRoutes configures the admin service surface. The endpoints are
// network-trusted by default. Set ADMIN_REQUIRE_AUTH=true to require an
// admin bearer token.
func SetupAdminRoutes(app *fiber.App) {
	guards := []fiber.Handler{}
	if os.Getenv("ADMIN_REQUIRE_AUTH") == "true" {
		guards = append(guards, middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	}

	adminGroup := app.Group("/api/admin", guards...)
	adminGroup.Get("/dashboard/stats", admin.DashboardStats)
	adminGroup.Get("/users/growth", admin.UserGrowth)
	adminGroup.Get("/users/recent-activity", admin.RecentActivity)
	adminGroup.Get("/users", admin.ListUsers)
	adminGroup.Post("/users", admin.CreateUser)
	adminGroup.Get("/users/:id", admin.GetUser)
	adminGroup.Patch("/users/:id/status", admin.UpdateUserStatus)

	services := app.Group("/api/services", guards...)
	services.Get("/stats/overview", admin.ServiceStatsOverview)
	services.Get("/", admin.ListServices)
	services.Get("/:id", admin.GetService)
	services.Post("/", admin.CreateService)
	services.Put("/:id", admin.UpdateService)
	services.Delete("/:id", admin.DeleteService)

	app.Get("/api/health", controllers.HealthCheck)
}
