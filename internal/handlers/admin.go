package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"prospeo/internal/database"
	"prospeo/internal/metrics"
	"prospeo/internal/middleware"
	"prospeo/internal/notify"
	"prospeo/internal/repository"
	"prospeo/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Service *service.CampaignService
	Repo    repository.CampaignRepositoryInterface
	Hub     *notify.Hub
}

// ListAll returns one page of all campaigns, regardless of owner.
func (h *AdminHandler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))

	campaigns, pagination, err := h.Service.ListAll(page, pageSize)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns":  campaigns,
		"pagination": pagination,
	})
}

// Stats are aggregated in the database; the table never travels to the
// application for a sum.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Repo.StatsAll()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Update applies the admin detail form: status, internal status,
// notes, delivered prospects, amount. The payload carries the version
// the admin last read; concurrent edits surface as a 409.
func (h *AdminHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var upd service.AdminUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "données invalides"})
		return
	}

	campaign, err := h.Service.UpdateCampaign(id, upd)
	if err != nil {
		respondErr(c, err)
		return
	}

	if upd.Status != nil {
		metrics.StatusTransitions.WithLabelValues(*upd.Status).Inc()
		database.CreateAuditLog(user.ID, "campaign", campaign.ID, "status_change",
			fmt.Sprintf("Statut changé en %q", campaign.Status.DisplayName()))
	}
	if upd.AdminNotes != nil || upd.InternalStatus != nil {
		database.CreateAuditLog(user.ID, "campaign", campaign.ID, "notes_update", "Notes admin mises à jour")
	}

	h.Hub.BroadcastChange("campaigns", campaign.ID, "update")

	c.JSON(http.StatusOK, campaignView(campaign))
}
