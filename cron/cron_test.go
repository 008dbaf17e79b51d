package cron

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handyheroes/handyman-backend/models"
)

func TestCountProvidersOffering(t *testing.T) {
	profiles := []models.ProviderProfile{
		{Services: []string{"Plumbing", "Electrical"}},
		{Services: []string{"plumbing"}},
		{Services: []string{"Painting"}},
		{Services: []string{}},
	}

	assert.Equal(t, 2, CountProvidersOffering(profiles, "Plumbing"))
	assert.Equal(t, 1, CountProvidersOffering(profiles, "electrical"))
	assert.Equal(t, 0, CountProvidersOffering(profiles, "Roofing"))
	assert.Equal(t, 0, CountProvidersOffering(nil, "Plumbing"))
}
