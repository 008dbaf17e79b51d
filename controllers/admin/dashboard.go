package admin

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/handyheroes/handyman-backend/db"
	"github.com/handyheroes/handyman-backend/models"
	"github.com/handyheroes/handyman-backend/utils"
)

// DashboardStats returns the headline counters for the admin dashboard.
// Pending providers are derived, not stored.
func DashboardStats(c *fiber.Ctx) error {
	var stats struct {
		TotalUsers        int64     `json:"total_users"`
		TotalProviders    int64     `json:"total_providers"`
		TotalCustomers    int64     `json:"total_customers"`
		VerifiedProviders int64     `json:"verified_providers"`
		PendingProviders  int64     `json:"pending_providers"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	userQuery := db.DB.Model(&models.User{})

	userQuery.Count(&stats.TotalUsers)
	userQuery.Where("role = ?", models.RoleProvider).Count(&stats.TotalProviders)
	db.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&stats.TotalCustomers)
	db.DB.Model(&models.User{}).
		Where("role = ? AND is_verified = ?", models.RoleProvider, true).
		Count(&stats.VerifiedProviders)

	stats.PendingProviders = stats.TotalProviders - stats.VerifiedProviders
	stats.LastUpdated = time.Now()

	return c.JSON(stats)
}

// GrowthPoint is one month of the signup time series.
type GrowthPoint struct {
	Year      int   `json:"year"`
	Month     int   `json:"month"`
	Users     int64 `json:"users"`
	Providers int64 `json:"providers"`
}

type growthRow struct {
	Year  int
	Month int
	Role  string
	Count int64
}

// ParseGrowthPeriod maps the period query value to a month count.
// Unknown values fall back to six months.
func ParseGrowthPeriod(period string) int {
	switch period {
	case "3months":
		return 3
	case "6months":
		return 6
	case "12months":
		return 12
	default:
		return 6
	}
}

// BuildGrowthSeries merges per-role rows into one chronological series.
// Rows must arrive ordered by year then month.
func BuildGrowthSeries(rows []growthRow) []GrowthPoint {
	series := make([]GrowthPoint, 0, len(rows))
	for _, row := range rows {
		n := len(series)
		if n == 0 || series[n-1].Year != row.Year || series[n-1].Month != row.Month {
			series = append(series, GrowthPoint{Year: row.Year, Month: row.Month})
			n++
		}
		switch row.Role {
		case models.RoleUser:
			series[n-1].Users = row.Count
		case models.RoleProvider:
			series[n-1].Providers = row.Count
		}
	}
	return series
}

// UserGrowth groups signups inside the trailing window by year, month and
// role. Read-only; an empty window yields an empty list.
func UserGrowth(c *fiber.Ctx) error {
	months := ParseGrowthPeriod(c.Query("period", "6months"))

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(months - 1), 0)

	var rows []growthRow
	query := `
		SELECT
			EXTRACT(YEAR FROM created_at)::int AS year,
			EXTRACT(MONTH FROM created_at)::int AS month,
			role,
			COUNT(*) AS count
		FROM users
		WHERE created_at >= ? AND role IN (?, ?)
		GROUP BY year, month, role
		ORDER BY year ASC, month ASC
	`
	if err := db.DB.Raw(query, start, models.RoleUser, models.RoleProvider).
		Scan(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch growth data",
		})
	}

	return c.JSON(BuildGrowthSeries(rows))
}

// ActivityLine renders the human-readable feed entry for a signup.
func ActivityLine(user *models.User) string {
	switch user.Role {
	case models.RoleProvider:
		return fmt.Sprintf("%s registered as a service provider", user.Name)
	case models.RoleAdmin:
		return fmt.Sprintf("%s joined as an administrator", user.Name)
	default:
		return fmt.Sprintf("%s joined as a customer", user.Name)
	}
}

// RecentActivity returns the newest signups as feed entries with relative
// timestamps.
func RecentActivity(c *fiber.Ctx) error {
	limit := 10
	if c.Query("limit") != "" {
		if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var users []models.User
	if err := db.DB.Order("created_at desc").Limit(limit).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch recent activity",
		})
	}

	type ActivityEntry struct {
		ID       uint      `json:"id"`
		Activity string    `json:"activity"`
		TimeAgo  string    `json:"time_ago"`
		JoinedAt time.Time `json:"joined_at"`
	}

	now := time.Now()
	feed := make([]ActivityEntry, 0, len(users))
	for i := range users {
		feed = append(feed, ActivityEntry{
			ID:       users[i].ID,
			Activity: ActivityLine(&users[i]),
			TimeAgo:  utils.TimeAgo(users[i].CreatedAt, now),
			JoinedAt: users[i].CreatedAt,
		})
	}

	return c.JSON(feed)
}
