package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint
	User   User

	Entity   string `gorm:"size:50;not null"` // "campaign", "user"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "status_change", "notes_update"
	Details  string `gorm:"type:text"`
}
