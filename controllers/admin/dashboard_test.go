package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handyheroes/handyman-backend/models"
)

func TestParseGrowthPeriod(t *testing.T) {
	assert.Equal(t, 3, ParseGrowthPeriod("3months"))
	assert.Equal(t, 6, ParseGrowthPeriod("6months"))
	assert.Equal(t, 12, ParseGrowthPeriod("12months"))

	// Unknown or empty values fall back to six months
	assert.Equal(t, 6, ParseGrowthPeriod(""))
	assert.Equal(t, 6, ParseGrowthPeriod("1year"))
}

func TestBuildGrowthSeriesMergesRolesPerMonth(t *testing.T) {
	rows := []growthRow{
		{Year: 2025, Month: 4, Role: models.RoleUser, Count: 10},
		{Year: 2025, Month: 4, Role: models.RoleProvider, Count: 3},
		{Year: 2025, Month: 5, Role: models.RoleProvider, Count: 7},
		{Year: 2025, Month: 6, Role: models.RoleUser, Count: 2},
	}

	series := BuildGrowthSeries(rows)

	assert.Equal(t, []GrowthPoint{
		{Year: 2025, Month: 4, Users: 10, Providers: 3},
		{Year: 2025, Month: 5, Users: 0, Providers: 7},
		{Year: 2025, Month: 6, Users: 2, Providers: 0},
	}, series)
}

func TestBuildGrowthSeriesEmptyWindow(t *testing.T) {
	series := BuildGrowthSeries(nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestActivityLine(t *testing.T) {
	assert.Equal(t, "Ana joined as a customer",
		ActivityLine(&models.User{Name: "Ana", Role: models.RoleUser}))
	assert.Equal(t, "Bob registered as a service provider",
		ActivityLine(&models.User{Name: "Bob", Role: models.RoleProvider}))
	assert.Equal(t, "Cleo joined as an administrator",
		ActivityLine(&models.User{Name: "Cleo", Role: models.RoleAdmin}))
}
