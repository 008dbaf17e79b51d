package admin

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
)

// ListServices returns the catalog with optional substring search over
// name, category and description.
func ListServices(c *fiber.Ctx) error {
	page, limit := pagination(c)

	query := db.DB.Model(&models.Service{})

	if search := c.Query("search"); search != "" {
		like := fmt.Sprintf("%%%s%%", search)
		query = query.Where("name ILIKE ? OR category ILIKE ? OR description ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count services",
		})
	}

	var services []models.Service
	if err := query.Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch services",
		})
	}

	return c.JSON(fiber.Map{
		"items":      services,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	return c.JSON(service)
}

type ServiceInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	PricingModel string  `json:"pricing_model"`
	PriceMin     float64 `json:"price_min"`
	PriceMax     float64 `json:"price_max"`
}

// CreateService adds a catalog entry. Name plus category must be unique;
// the storage-level duplicate error is remapped to a readable conflict.
func CreateService(c *fiber.Ctx) error {
	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name is required")
	}
	if input.Category == "" {
		missing = append(missing, "category is required")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing required fields",
			"details": missing,
		})
	}

	pricingModel := input.PricingModel
	if pricingModel == "" {
		pricingModel = models.PricingHourly
	}
	if !models.IsValidPricingModel(pricingModel) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid pricing model",
		})
	}

	service := models.Service{
		Name:         input.Name,
		Category:     input.Category,
		Description:  input.Description,
		PricingModel: pricingModel,
		PriceMin:     input.PriceMin,
		PriceMax:     input.PriceMax,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Service with this name and category already exists",
			})
		}
		log.Printf("Error creating service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial update to a catalog entry.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	updates := make(map[string]interface{})
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Category != "" {
		updates["category"] = input.Category
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.PricingModel != "" {
		if !models.IsValidPricingModel(input.PricingModel) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid pricing model",
			})
		}
		updates["pricing_model"] = input.PricingModel
	}
	if input.PriceMin != 0 {
		updates["price_min"] = input.PriceMin
	}
	if input.PriceMax != 0 {
		updates["price_max"] = input.PriceMax
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&service).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Service with this name and category already exists",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update service",
			})
		}
	}

	return c.JSON(service)
}

// DeleteService removes a catalog entry. No soft delete here.
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	db.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}

// ServiceStatsOverview summarizes the catalog.
func ServiceStatsOverview(c *fiber.Ctx) error {
	var stats struct {
		TotalServices int64   `json:"total_services"`
		TotalBookings int64   `json:"total_bookings"`
		AverageRating float64 `json:"average_rating"`
	}

	db.DB.Model(&models.Service{}).Count(&stats.TotalServices)
	db.DB.Model(&models.Service{}).
		Select("COALESCE(SUM(total_bookings), 0)").
		Scan(&stats.TotalBookings)
	db.DB.Model(&models.Service{}).
		Select("COALESCE(AVG(average_rating), 0)").
		Scan(&stats.AverageRating)

	type CategoryCount struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	var categories []CategoryCount
	db.DB.Model(&models.Service{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Order("count desc").
		Scan(&categories)

	return c.JSON(fiber.Map{
		"total_services": stats.TotalServices,
		"total_bookings": stats.TotalBookings,
		"average_rating": stats.AverageRating,
		"categories":     categories,
	})
}
