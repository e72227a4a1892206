package models

import "time"

// File is a shared attachment. URL points at the sanitized object key
// in storage; Filename keeps the original name verbatim for display.
type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	CampaignID uint   `gorm:"index;not null" json:"campaign_id"`
	URL        string `gorm:"size:1024;not null" json:"url"`
	Filename   string `gorm:"size:512;not null" json:"filename"`
	UploadedBy string `gorm:"size:20;not null" json:"uploaded_by"` // "admin" / "client"
}
