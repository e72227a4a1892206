package service_test

import (
	"testing"

	"prospeo/internal/models"
	"prospeo/internal/service"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestComputeStatsEmpty(t *testing.T) {
	stats := service.ComputeStats(nil)
	assert.Equal(t, int64(0), stats.Total)
	assert.Equal(t, int64(0), stats.Prospects)
	assert.Equal(t, int64(0), stats.Active)
	assert.Equal(t, 0.0, stats.Amount)
}

func TestComputeStatsNullProspectsCountAsZero(t *testing.T) {
	campaigns := []models.Campaign{
		{Status: models.StatusPending, TargetVolume: 100, Amount: 2500},
		{Status: models.StatusInProduction, TargetVolume: 200, ProspectsGenerated: intPtr(80), Amount: 5000},
	}
	stats := service.ComputeStats(campaigns)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(80), stats.Prospects) // nil counts as 0
	assert.Equal(t, int64(2), stats.Active)
	assert.Equal(t, 7500.0, stats.Amount)
}

func TestComputeStatsDeliveredCountsTargetVolume(t *testing.T) {
	campaigns := []models.Campaign{
		// Delivered contributes its full target even when
		// prospects_generated lags behind.
		{Status: models.StatusDelivered, TargetVolume: 50, ProspectsGenerated: intPtr(30), Amount: 1250},
		{Status: models.StatusInProduction, TargetVolume: 100, ProspectsGenerated: intPtr(10), Amount: 2500},
	}
	stats := service.ComputeStats(campaigns)
	assert.Equal(t, int64(60), stats.Prospects)
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, 3750.0, stats.Amount)
}

func TestComputeStatsZeroAmountRows(t *testing.T) {
	campaigns := []models.Campaign{
		{Status: models.StatusPending, TargetVolume: 10},
		{Status: models.StatusPending, TargetVolume: 10, Amount: 250},
	}
	stats := service.ComputeStats(campaigns)
	assert.Equal(t, 250.0, stats.Amount)
}
