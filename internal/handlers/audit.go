package handlers

import (
	"net/http"

	"prospeo/internal/database"
	"prospeo/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs shows the most recent admin mutations, newest first.
func ListAuditLogs(c *gin.Context) {
	logs := []models.AuditLog{}
	err := database.DB.
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(200).
		Find(&logs).Error
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": logs})
}
