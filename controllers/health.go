package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthCheck is the liveness probe.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
