package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"prospeo/internal/database"
	"prospeo/internal/middleware"
	"prospeo/internal/models"
	"prospeo/internal/service"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	Service *service.CampaignService
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifiant de campagne invalide"})
		return 0, false
	}
	return uint(id), true
}

func campaignView(c *models.Campaign) gin.H {
	return gin.H{
		"campaign":     c,
		"status_label": c.Status.DisplayName(),
		"progress":     c.Status.Progress(),
	}
}

// ListMine returns the caller's campaigns newest-first plus the
// dashboard totals reduced over the same rows.
func (h *CampaignHandler) ListMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return
	}

	campaigns, err := h.Service.ListOwned(user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"campaigns": campaigns,
		"stats":     service.ComputeStats(campaigns),
	})
}

// StatsMine returns the caller's dashboard totals aggregated in SQL.
func (h *CampaignHandler) StatsMine(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return
	}

	stats, err := h.Service.StatsOwned(user.ID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Create receives the wizard's final payload and performs the one
// insert that persists the campaign.
func (h *CampaignHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return
	}

	var draft service.CampaignDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "données invalides"})
		return
	}

	campaign, err := h.Service.CreateCampaign(user.ID, draft)
	if err != nil {
		respondErr(c, err)
		return
	}

	database.CreateAuditLog(user.ID, "campaign", campaign.ID, "create",
		fmt.Sprintf("Campagne %q créée (%d prospects)", campaign.Name, campaign.TargetVolume))

	c.JSON(http.StatusCreated, campaignView(campaign))
}

func (h *CampaignHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentification requise"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	campaign, err := h.Service.GetForViewer(id, user)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, campaignView(campaign))
}
