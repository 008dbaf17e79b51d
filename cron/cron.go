package cron

import (
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
)

// StartCronJobs schedules the hourly refresh of the denormalized catalog
// counters.
func StartCronJobs() {
	c := cron.New()
	_, err := c.AddFunc("@hourly", RefreshServiceCounters)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for service counter refresh")
}

// CountProvidersOffering counts verified providers whose service list
// includes the named service (case-insensitive).
func CountProvidersOffering(profiles []models.ProviderProfile, serviceName string) int {
	count := 0
	for _, profile := range profiles {
		for _, offered := range profile.Services {
			if strings.EqualFold(offered, serviceName) {
				count++
				break
			}
		}
	}
	return count
}

// RefreshServiceCounters recomputes providers_count for every catalog entry
// from the verified provider profiles.
func RefreshServiceCounters() {
	var services []models.Service
	if err := db.DB.Find(&services).Error; err != nil {
		log.Printf("Counter refresh: failed to load services: %v", err)
		return
	}

	var profiles []models.ProviderProfile
	if err := db.DB.Where("status = ?", models.StatusVerified).Find(&profiles).Error; err != nil {
		log.Printf("Counter refresh: failed to load provider profiles: %v", err)
		return
	}

	updated := 0
	for i := range services {
		count := CountProvidersOffering(profiles, services[i].Name)
		if count == services[i].ProvidersCount {
			continue
		}
		if err := db.DB.Model(&services[i]).
			UpdateColumn("providers_count", count).Error; err != nil {
			log.Printf("Counter refresh: failed to update service %d: %v", services[i].ID, err)
			continue
		}
		updated++
	}

	log.Printf("Counter refresh: %d services checked, %d updated", len(services), updated)
}
