package service

import (
	"prospeo/internal/models"
	"prospeo/internal/repository"
)

// ComputeStats reduces an already-fetched row set into dashboard
// totals. Missing numeric fields count as zero. The admin aggregate
// uses the SQL-side repository.Stats* variants instead; this pure
// reduction backs the owner dashboard, where the row set is already in
// hand and bounded per owner.
func ComputeStats(campaigns []models.Campaign) repository.CampaignStats {
	stats := repository.CampaignStats{}
	for i := range campaigns {
		c := &campaigns[i]
		stats.Total++
		stats.Prospects += int64(c.EffectiveDelivered())
		if c.Status != models.StatusDelivered {
			stats.Active++
		}
		stats.Amount += c.Amount
	}
	return stats
}
