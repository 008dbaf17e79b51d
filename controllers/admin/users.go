package admin

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
	"github.com/handyheroes/handyman-backend/utils"
)

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func pagination(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// ListUsers returns the paginated user directory with an optional role
// filter and case-insensitive substring search over name and email. A page
// past the end is an empty list, not an error.
func ListUsers(c *fiber.Ctx) error {
	page, limit := pagination(c)

	query := db.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		if !models.IsValidRole(role) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid role",
			})
		}
		query = query.Where("role = ?", role)
	}

	if search := c.Query("search"); search != "" {
		like := fmt.Sprintf("%%%s%%", search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count users",
		})
	}

	var users []models.User
	if err := query.Preload("ProviderProfile").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	items := make([]*models.User, 0, len(users))
	for i := range users {
		items = append(items, users[i].Public())
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages(total, limit),
	})
}

// GetUser returns a single user by id.
func GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.Preload("ProviderProfile").First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(user.Public())
}

type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
}

// CreateUser is the admin creation path. Unlike self-registration, a
// provider created here gets a default pending profile scaffolded.
func CreateUser(c *fiber.Ctx) error {
	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name is required")
	}
	if input.Email == "" {
		missing = append(missing, "email is required")
	}
	if input.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing required fields",
			"details": missing,
		})
	}

	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.IsValidRole(role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role",
		})
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Name:         input.Name,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Password:     hashed,
		Role:         role,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		IsActive:     true,
		LastActivity: time.Now(),
	}

	if role == models.RoleProvider {
		user.ProviderProfile = &models.ProviderProfile{
			Services:       []string{},
			Certifications: []string{},
			Availability:   []string{},
			Status:         models.StatusPending,
		}
	}

	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User with this email already exists",
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

// UpdateUserStatus toggles the soft-delete flag. Users are never hard
// deleted from the admin tier.
func UpdateUserStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		IsActive *bool `json:"is_active"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing required fields",
			"details": []string{"is_active is required"},
		})
	}

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := db.DB.Model(&user).Update("is_active", *input.IsActive).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user status",
		})
	}

	return c.JSON(user.Public())
}
