package db

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/handyheroes/handyman-backend/models"
	"github.com/handyheroes/handyman-backend/utils"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Service{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedAdmin()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no such user exists yet.
func seedAdmin() {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:       "Administrator",
		Email:      email,
		Password:   hashed,
		Role:       models.RoleAdmin,
		IsVerified: true,
		IsActive:   true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin account %s", email)
}
