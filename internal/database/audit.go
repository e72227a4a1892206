package database

import (
	"log"

	"prospeo/internal/models"
)

func CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	entry := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := DB.Create(&entry).Error; err != nil {
		log.Printf("failed to write audit log: %v", err)
	}
}
